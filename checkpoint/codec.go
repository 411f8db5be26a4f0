package checkpoint

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeYAML renders r as a human-inspectable YAML document.
func EncodeYAML(r Record) ([]byte, error) {
	return yaml.Marshal(r)
}

// DecodeYAML parses a YAML-encoded Record and rejects it if its Version
// is not CurrentVersion.
func DecodeYAML(data []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	if err := r.checkVersion(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// EncodeJSON renders r as JSON, for the harness's bulk report dumps.
func EncodeJSON(r Record) ([]byte, error) {
	return gojson.Marshal(r)
}

// DecodeJSON parses a JSON-encoded Record and rejects it if its Version
// is not CurrentVersion.
func DecodeJSON(data []byte) (Record, error) {
	var r Record
	if err := gojson.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	if err := r.checkVersion(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// EncodeBatchJSON renders a slice of Records as a single JSON array, the
// shape the harness writes its bulk dumps in.
func EncodeBatchJSON(records []Record) ([]byte, error) {
	return gojson.Marshal(records)
}

// DecodeBatchJSON parses a JSON array of Records, rejecting the whole
// batch if any entry carries an unsupported version.
func DecodeBatchJSON(data []byte) ([]Record, error) {
	var records []Record
	if err := gojson.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := r.checkVersion(); err != nil {
			return nil, err
		}
	}
	return records, nil
}
