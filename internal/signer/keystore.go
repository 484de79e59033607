package signer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// LoadKeystore reads a Sui keystore file (a JSON array of base64 flag||seed entries) into a new Store.
func LoadKeystore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}
	return ParseKeystore(data)
}

// ParseKeystore decodes keystore contents.
func ParseKeystore(data []byte) (*Store, error) {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode keystore: %w", err)
	}

	store := NewStore()
	for i, entry := range entries {
		signer, err := parseKeystoreEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("keystore entry %d: %w", i, err)
		}
		store.StoreSigner(signer)
	}
	return store, nil
}

func parseKeystoreEntry(entry string) (*Signer, error) {
	raw, err := base64.StdEncoding.DecodeString(entry)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty key")
	}
	if raw[0] != ed25519Flag {
		return nil, fmt.Errorf("unsupported key scheme flag 0x%02x", raw[0])
	}
	return NewSignerFromSeed(raw[1:])
}
