package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValueScanRoundTrip(t *testing.T) {
	original := StringList{"二次函数", "因式分解", "代数"}

	value, err := original.Value()
	require.NoError(t, err)

	var restored StringList
	require.NoError(t, restored.Scan(value))

	// 标签顺序必须保持
	assert.Equal(t, original, restored)
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  StringList
	}{
		{"nil 列值", nil, nil},
		{"空字节", []byte{}, nil},
		{"字节数组", []byte(`["a","b"]`), StringList{"a", "b"}},
		{"字符串", `["数学"]`, StringList{"数学"}},
		{"空数组", []byte(`[]`), StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, l.Scan(tt.input))
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestStringListScanUnsupportedType(t *testing.T) {
	var l StringList
	assert.Error(t, l.Scan(123))
}

func TestStringListNilValue(t *testing.T) {
	var l StringList
	value, err := l.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
