package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		plain   string
		wantErr bool
	}{
		{name: "exact match", stored: "demo123", plain: "demo123"},
		{name: "case differs", stored: "demo123", plain: "Demo123", wantErr: true},
		{name: "prefix only", stored: "demo123", plain: "demo", wantErr: true},
		{name: "trailing space", stored: "demo123", plain: "demo123 ", wantErr: true},
		{name: "empty submitted", stored: "demo123", plain: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.stored, tt.plain)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPasswordMismatch)
				return
			}
			assert.NoError(t, err)
		})
	}
}
