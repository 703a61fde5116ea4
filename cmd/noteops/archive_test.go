// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii", "202507", 30, "202507"},
		{"long ascii", "0123456789", 8, "01234..."},
		{"exact length", "0123456789", 10, "0123456789"},
		{"cjk label kept whole", "202507 關帳", 30, "202507 關帳"},
		{"cjk label cut on rune boundary", "娛樂水電管理費飲食日常用品", 8, "娛樂水電管..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}
