package codec

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ytget/qvideo/internal/model"
)

// Masking constants. Changing either breaks every stored blob.
const (
	EncryptionKey      = 42857
	Mask          byte = EncryptionKey % 256
)

// ErrEmptyBlob is returned by Parse for an empty input
var ErrEmptyBlob = errors.New("empty blob")

// DecodeError describes a stored blob that could not be turned back into a list
type DecodeError struct {
	Stage string // "hex" or "json"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Encode serializes the list to compact JSON and masks it into lowercase hex,
// two characters per byte.
func Encode(list model.VideoList) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list.Clone()); err != nil {
		return "", fmt.Errorf("marshal video list: %w", err)
	}

	text := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return hex.EncodeToString(xor(text)), nil
}

// Decode reverses Encode. It never fails: malformed input is logged and
// yields an empty list.
func Decode(blob string) model.VideoList {
	list, err := Parse(blob)
	if err != nil {
		log.Printf("[codec] Decryption error: %v", err)
		return model.VideoList{}
	}
	return list
}

// Parse is the strict form of Decode and reports why a blob is unreadable.
func Parse(blob string) (model.VideoList, error) {
	if blob == "" {
		return model.VideoList{}, &DecodeError{Stage: "hex", Err: ErrEmptyBlob}
	}

	raw, err := hex.DecodeString(blob)
	if err != nil {
		return model.VideoList{}, &DecodeError{Stage: "hex", Err: err}
	}

	var list model.VideoList
	if err := json.Unmarshal(xor(raw), &list); err != nil {
		return model.VideoList{}, &DecodeError{Stage: "json", Err: err}
	}

	// null decodes to a nil list; Clone also fills nil labels
	list = list.Clone()
	for i := range list {
		list[i].Rating = model.ClampRating(list[i].Rating)
	}
	return list, nil
}

// xor applies the mask to each byte. It is its own inverse.
func xor(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ Mask
	}
	return out
}
