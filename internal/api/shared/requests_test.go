package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Likes string `json:"likes"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "Ada", "likes": "stars"}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "Ada",}`,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     ErrEmptyBody,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target payload
			err := DecodeJSON(req, &target)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Ada", target.Name)
				assert.Equal(t, "stars", target.Likes)
			}
		})
	}
}

type errorReader struct{}

func (errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target struct{}
	err := DecodeJSON(req, &target)

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

var errBlankName = errors.New("name is blank")

type validatableStruct struct {
	Name string `validate:"required"`
}

func (v *validatableStruct) Validate() error {
	if v.Name == " " {
		return errBlankName
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&validatableStruct{Name: "Ada"}))
	})

	t.Run("struct tag failure", func(t *testing.T) {
		err := ValidateRequest(&validatableStruct{})
		var vErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &vErrs)
	})

	t.Run("validate method failure", func(t *testing.T) {
		err := ValidateRequest(&validatableStruct{Name: " "})
		assert.ErrorIs(t, err, errBlankName)
	})

	t.Run("no validate method", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&struct{ Name string }{"test"}))
	})
}
