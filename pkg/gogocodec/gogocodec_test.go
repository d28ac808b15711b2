package gogocodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/googol-search/googol/pkg/googolpb"
)

func TestCodecMarshallAndUnmarshall_googol_type(t *testing.T) {
	// marshal a googol object using the custom codec
	c := NewCodec()
	req1 := &googolpb.EnqueueRequest{
		Url: "https://go.dev/blog/",
	}
	data, err := c.Marshal(req1)
	require.NoError(t, err)

	// unmarshal and check if its the same
	req2 := &googolpb.EnqueueRequest{}
	err = c.Unmarshal(data, req2)
	require.NoError(t, err)
	assert.Equal(t, req1.Url, req2.Url)
}

func TestCodecMarshallAndUnmarshall_foreign_type(t *testing.T) {
	// anything outside googolpb goes through the standard proto codec
	c := NewCodec()
	goprotoMessage1 := &emptypb.Empty{}
	data, err := c.Marshal(goprotoMessage1)
	require.NoError(t, err)

	goprotoMessage2 := &emptypb.Empty{}
	err = c.Unmarshal(data, goprotoMessage2)
	require.NoError(t, err)
	assert.True(t, proto.Equal(goprotoMessage1, goprotoMessage2))
}

func TestCodecMarshal_unsupported_type(t *testing.T) {
	c := NewCodec()

	_, err := c.Marshal(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported marshal type")
}

func TestCodecUnmarshal_unsupported_type(t *testing.T) {
	c := NewCodec()

	err := c.Unmarshal([]byte{0x01}, struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported unmarshal type")
}
