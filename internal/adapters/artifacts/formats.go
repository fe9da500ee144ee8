package artifacts

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
)

// rawArtifact is the union of the artifact layouts sling understands
type rawArtifact struct {
	ContractName string          `json:"contractName"` // hardhat, truffle
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"` // string (hardhat) or object (foundry)
	Metadata     json.RawMessage `json:"metadata"` // object (foundry) or string (truffle)

	// Remix compile artifact
	Data *struct {
		Bytecode bytecodeObject `json:"bytecode"`
	} `json:"data"`

	// Remix/solc metadata
	Compiler *struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Output *struct {
		ABI json.RawMessage `json:"abi"`
	} `json:"output"`

	// solc --combined-json
	Contracts map[string]solcContract `json:"contracts"`
	Version   string                  `json:"version"`
}

// bytecodeObject represents bytecode information in Foundry and Remix artifacts
type bytecodeObject struct {
	Object         string                     `json:"object"`
	LinkReferences map[string]json.RawMessage `json:"linkReferences"`
}

type solcContract struct {
	ABI json.RawMessage `json:"abi"` // array, or a JSON string holding the array in older solc
	Bin string          `json:"bin"`
}

type foundryMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
}

// decodeArtifact detects the layout of data and extracts ABI and creation bytecode
func decodeArtifact(path string, data []byte, contractName string) (*domain.Artifact, error) {
	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, path, err)
	}

	artifact := &domain.Artifact{
		Name: nameFromPath(path),
		Path: path,
	}

	var abiJSON json.RawMessage
	var code string

	switch {
	case len(raw.Contracts) > 0:
		key, contract, err := selectSolcContract(raw.Contracts, contractName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		artifact.Format = domain.FormatSolcCombined
		artifact.Name = key[strings.LastIndex(key, ":")+1:]
		artifact.Compiler = raw.Version
		abiJSON = unwrapStringABI(contract.ABI)
		code = contract.Bin

	case raw.Output != nil && isPresent(raw.Output.ABI):
		artifact.Format = domain.FormatRemixMetadata
		if raw.Compiler != nil {
			artifact.Compiler = raw.Compiler.Version
		}
		abiJSON = raw.Output.ABI
		if raw.Data != nil {
			code = raw.Data.Bytecode.Object
		} else {
			code, _ = bytecodeString(raw.Bytecode)
		}
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("%w: %s is a metadata file and no compile artifact %s.json was found beside it",
				domain.ErrNoBytecode, path, artifact.Name)
		}

	case raw.Data != nil:
		artifact.Format = domain.FormatRemix
		abiJSON = raw.ABI
		code = raw.Data.Bytecode.Object

	case isPresent(raw.Bytecode):
		if s, ok := bytecodeString(raw.Bytecode); ok {
			artifact.Format = domain.FormatHardhat
			code = s
			if raw.ContractName != "" {
				artifact.Name = raw.ContractName
			}
		} else {
			var obj bytecodeObject
			if err := json.Unmarshal(raw.Bytecode, &obj); err != nil {
				return nil, fmt.Errorf("%w: %s: bytecode: %v", domain.ErrInvalidArtifact, path, err)
			}
			artifact.Format = domain.FormatFoundry
			code = obj.Object
			var meta foundryMetadata
			if json.Unmarshal(raw.Metadata, &meta) == nil {
				artifact.Compiler = meta.Compiler.Version
			}
		}
		abiJSON = raw.ABI

	default:
		return nil, fmt.Errorf("%w: %s: no abi/bytecode found in any known layout", domain.ErrInvalidArtifact, path)
	}

	if !isPresent(abiJSON) {
		return nil, fmt.Errorf("%w: %s: missing abi", domain.ErrInvalidArtifact, path)
	}
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: abi: %v", domain.ErrInvalidArtifact, path, err)
	}
	artifact.ABI = parsed
	artifact.RawABI = abiJSON

	bytecode, err := decodeBytecode(code)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", artifact.Name, path, err)
	}
	artifact.Bytecode = bytecode

	return artifact, nil
}

// decodeBytecode decodes creation bytecode given as hex, with or without 0x
func decodeBytecode(code string) ([]byte, error) {
	code = strings.TrimPrefix(strings.TrimSpace(code), "0x")
	if code == "" {
		return nil, domain.ErrNoBytecode
	}
	// solc leaves __$<hash>$__ (or __Name___ in legacy output) where library addresses go
	if strings.Contains(code, "__") {
		return nil, domain.ErrUnlinkedBytecode
	}
	bytecode, err := hex.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("%w: bytecode is not hex: %v", domain.ErrInvalidArtifact, err)
	}
	return bytecode, nil
}

// selectSolcContract picks a contract out of solc combined output by name
func selectSolcContract(contracts map[string]solcContract, name string) (string, solcContract, error) {
	keys := lo.Keys(contracts)
	sort.Strings(keys)

	if name == "" {
		if len(keys) == 1 {
			return keys[0], contracts[keys[0]], nil
		}
		return "", solcContract{}, fmt.Errorf("artifact holds %d contracts, pick one with --contract: %s",
			len(keys), strings.Join(keys, ", "))
	}

	matches := lo.Filter(keys, func(key string, _ int) bool {
		return key == name || strings.HasSuffix(key, ":"+name)
	})
	switch len(matches) {
	case 0:
		return "", solcContract{}, fmt.Errorf("%w: %s is not one of %s", domain.ErrArtifactNotFound, name, strings.Join(keys, ", "))
	case 1:
		return matches[0], contracts[matches[0]], nil
	default:
		return "", solcContract{}, fmt.Errorf("contract name %s is ambiguous: %s", name, strings.Join(matches, ", "))
	}
}

// unwrapStringABI handles older solc that emitted the ABI as a JSON string
func unwrapStringABI(raw json.RawMessage) json.RawMessage {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return json.RawMessage(s)
	}
	return raw
}

func bytecodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// nameFromPath derives the contract name from an artifact file name
func nameFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".json")
	return strings.TrimSuffix(name, "_metadata")
}
