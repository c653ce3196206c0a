//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewONNXDetector_WithoutGoCV(t *testing.T) {
	d, err := NewONNXDetector("yolo11n.onnx")
	require.Error(t, err)
	require.Nil(t, d)
}
