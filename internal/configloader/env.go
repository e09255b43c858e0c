package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/doxymd/pkg/config"
)

// envVarPrefix is the prefix for all doxymd environment variables.
const envVarPrefix = "DOXYMD_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with DOXYMD_ (e.g. DOXYMD_LANG_DETECT=1).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v, ok := envBool("LANG_DETECT"); ok {
		cfg.LangDetect = v
	}
	if v, ok := envBool("VERIFY"); ok {
		cfg.Verify = v
	}
	if v, ok := envBool("GROUP"); ok {
		cfg.Group = &v
	}
	if v := os.Getenv(envVarPrefix + "OUTDIR"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(envVarPrefix + "EXTENSIONS"); v != "" {
		cfg.Extensions = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sJOBS=%q: %w", envVarPrefix, v, err)
		}
		cfg.Jobs = jobs
	}

	return nil
}

func envBool(suffix string) (bool, bool) {
	v := os.Getenv(envVarPrefix + suffix)
	if v == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return parsed, true
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
