package fixturearchive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyWithPrefix(t *testing.T) {
	a := &Archive{bucket: "goldens", prefix: "sdp/v1"}
	assert.Equal(t, "sdp/v1/primitives.sdpb", a.key("primitives.sdpb"))
}

func TestKeyWithoutPrefix(t *testing.T) {
	a := &Archive{bucket: "goldens"}
	assert.Equal(t, "arrays.sdpb", a.key("arrays.sdpb"))
}

func TestNewRejectsEmptyBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}
