package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/library"
)

func Test_ValidatePhone(t *testing.T) {
	valid := []string{"79001234567", "70000000000"}
	invalid := []string{"", "89001234567", "7900123456", "790012345678", "+79001234567", "7900123456a"}

	for _, phone := range valid {
		assert.NoError(t, library.ValidatePhone(phone), phone)
	}

	for _, phone := range invalid {
		assert.ErrorIs(t, library.ValidatePhone(phone), library.ErrInvalidPhone, phone)
	}
}

func Test_BuildNewReader(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		firstName   string
		lastName    string
		birthDate   string
		expectedErr error
	}{
		{name: "valid", phone: "79001234567", firstName: "Anna", lastName: "Karenina", birthDate: "1990-05-17"},
		{name: "missing_first_name", phone: "79001234567", lastName: "Karenina", birthDate: "1990-05-17", expectedErr: library.ErrReaderFieldsMissing},
		{name: "missing_birth_date", phone: "79001234567", firstName: "Anna", lastName: "Karenina", expectedErr: library.ErrReaderFieldsMissing},
		{name: "malformed_phone", phone: "89001234567", firstName: "Anna", lastName: "Karenina", birthDate: "1990-05-17", expectedErr: library.ErrInvalidPhone},
		{name: "malformed_birth_date", phone: "79001234567", firstName: "Anna", lastName: "Karenina", birthDate: "17.05.1990", expectedErr: library.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := library.BuildNewReader(tt.phone, tt.firstName, tt.lastName, tt.birthDate)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, library.ErrValidation)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.phone, reader.Phone)
			assert.Equal(t, tt.birthDate, reader.BirthDate)
		})
	}
}

func Test_ConsistencyLevel_DefaultsToStrong(t *testing.T) {
	ctx := t.Context()

	assert.Equal(t, library.StrongConsistency, library.GetConsistencyLevel(ctx))
	assert.Equal(t, library.EventualConsistency, library.GetConsistencyLevel(library.WithEventualConsistency(ctx)))
	assert.Equal(t, "strong", library.GetConsistencyLevel(library.WithStrongConsistency(ctx)).String())
}
