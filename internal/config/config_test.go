package config

import (
	"testing"

	"inflammation/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INFLAMMATION_DATA_FILE", "")
	t.Setenv("REPORT_FORMAT", "")
	t.Setenv("GENERATOR_PATIENTS", "")
	t.Setenv("GENERATOR_DAYS", "")
	t.Setenv("GENERATOR_SEED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Data.File)
	assert.Equal(t, FormatText, cfg.Report.Format)
	assert.Equal(t, 60, cfg.Generator.Patients)
	assert.Equal(t, 40, cfg.Generator.Days)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("INFLAMMATION_DATA_FILE", "data/inflammation-01.csv")
	t.Setenv("REPORT_FORMAT", "markdown")
	t.Setenv("GENERATOR_PATIENTS", "5")
	t.Setenv("GENERATOR_DAYS", "not-a-number")
	t.Setenv("GENERATOR_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/inflammation-01.csv", cfg.Data.File)
	assert.Equal(t, FormatMarkdown, cfg.Report.Format)
	assert.Equal(t, 5, cfg.Generator.Patients)
	assert.Equal(t, 40, cfg.Generator.Days, "unparseable values fall back to the default")
	assert.Equal(t, int64(7), cfg.Generator.Seed)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown format", key: "REPORT_FORMAT", value: "pdf"},
		{name: "zero patients", key: "GENERATOR_PATIENTS", value: "0"},
		{name: "negative days", key: "GENERATOR_DAYS", value: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
