package utils_test

import (
	"testing"

	"movecrm-backend/utils"

	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+972 52-123-4567",
		"+972521234567",
		"79161234567",
		"+1 (212) 555-0100",
	}
	for _, phone := range valid {
		require.True(t, utils.ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"not-a-phone",
		"+0 123",
		"1",
	}
	for _, phone := range invalid {
		require.False(t, utils.ValidatePhone(phone), phone)
	}
}
