package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMemberName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"корейское имя", "홍길동", "홍길동", false},
		{"латиница с точкой и дефисом", "j.kim-2", "j.kim-2", false},
		{"пробелы по краям обрезаются", "  Alice  ", "Alice", false},
		{"пустое имя", "   ", "", true},
		{"один символ", "A", "", true},
		{"длиннее 50 символов", strings.Repeat("가", 51), "", true},
		{"недопустимые символы", "Alice!", "", true},
		{"эмодзи", "Bob🙂", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMemberName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateMemberMemo(t *testing.T) {
	t.Run("обрезка пробелов", func(t *testing.T) {
		memo, err := ValidateMemberMemo("  note \n")
		require.NoError(t, err)
		assert.Equal(t, "note", memo)
	})

	t.Run("ровно 1000 символов", func(t *testing.T) {
		_, err := ValidateMemberMemo(strings.Repeat("메", MaxMemoLength))
		assert.NoError(t, err)
	})

	t.Run("слишком длинная заметка", func(t *testing.T) {
		_, err := ValidateMemberMemo(strings.Repeat("a", MaxMemoLength+1))
		assert.ErrorIs(t, err, ErrInvalidMemo)
	})
}

func TestValidateDate(t *testing.T) {
	date, err := ValidateDate(" 2024-01-07 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-07", date)

	_, err = ValidateDate("")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = ValidateDate("07.01.2024")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = ValidateDate("2024-02-30")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDomainError_Is(t *testing.T) {
	err := NewNotFoundError("member 'Alice'")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "member 'Alice' not found", err.Message)
}
