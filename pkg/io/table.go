package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/strata"
)

// TableFile is the on-disk form of a weight table.
type TableFile struct {
	Name     string             `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Fallback float64            `toml:"fallback" yaml:"fallback" json:"fallback"`
	Weights  map[string]float64 `toml:"weights" yaml:"weights" json:"weights"`
}

// TableFileFrom converts a compiled table back into its file form.
func TableFileFrom(name string, t *strata.WeightTable) TableFile {
	tf := TableFile{
		Name:     name,
		Fallback: t.Fallback(),
		Weights:  make(map[string]float64, t.Len()),
	}
	for _, e := range t.Entries() {
		tf.Weights[string(e.Token)] = e.Weight
	}
	return tf
}

// TokenWeights validates every token name and returns the weights keyed
// by token. A table without weights is rejected.
func (tf TableFile) TokenWeights() (map[strata.Token]float64, error) {
	if len(tf.Weights) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTable, "table defines no weights")
	}
	out := make(map[strata.Token]float64, len(tf.Weights))
	for name, w := range tf.Weights {
		if err := errors.ValidateToken(name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "weights")
		}
		out[strata.Token(name)] = w
	}
	return out, nil
}

// Compile builds the weight table described by tf.
func (tf TableFile) Compile() (*strata.WeightTable, error) {
	weights, err := tf.TokenWeights()
	if err != nil {
		return nil, err
	}
	t, err := strata.NewWeightTable(weights, tf.Fallback)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "compile table %q", tf.Name)
	}
	return t, nil
}

// =============================================================================
// Table Import
// =============================================================================

// ImportTable reads a weight table file, choosing the format from its
// extension.
func ImportTable(path string) (TableFile, error) {
	if err := errors.ValidatePath(path); err != nil {
		return TableFile{}, err
	}
	format, err := TableFormatFromPath(path)
	if err != nil {
		return TableFile{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return TableFile{}, openError(path, err)
	}
	defer f.Close()

	tf, err := ReadTable(f, format)
	if err != nil {
		return TableFile{}, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return tf, nil
}

// ReadTable decodes a weight table in the given format from r.
// ReadTable does not close r.
func ReadTable(r io.Reader, format string) (TableFile, error) {
	if err := ValidateTableFormat(format); err != nil {
		return TableFile{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return TableFile{}, errors.Wrap(errors.ErrCodeFileIO, err, "read")
	}

	var tf TableFile
	switch format {
	case FormatTOML:
		var md toml.MetaData
		if md, err = toml.Decode(string(data), &tf); err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown field %q", undecoded[0].String())
			}
		}
	case FormatYAML:
		err = yaml.UnmarshalStrict(data, &tf)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&tf)
	}
	if err != nil {
		return TableFile{}, errors.Wrap(errors.ErrCodeInvalidTable, err, "decode %s", format)
	}
	return tf, nil
}

// =============================================================================
// Table Export
// =============================================================================

// ExportTable writes tf to path, choosing the format from its extension.
func ExportTable(path string, tf TableFile) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := TableFormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, tf, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "write %s", path)
	}
	return nil
}

// WriteTable encodes tf in the given format to w.
func WriteTable(w io.Writer, tf TableFile, format string) error {
	if err := ValidateTableFormat(format); err != nil {
		return err
	}

	var err error
	switch format {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(tf)
	case FormatYAML:
		var data []byte
		if data, err = yaml.Marshal(tf); err == nil {
			_, err = w.Write(data)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(tf)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "encode %s", format)
	}
	return nil
}
