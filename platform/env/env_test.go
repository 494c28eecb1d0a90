package env

import (
	"go.uber.org/zap"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("ENV_TEST_STRING", "value")
	if v := OrDefault(log, "ENV_TEST_STRING", "def"); v != "value" {
		t.Fatalf("Test OrDefault: Should have received \"value\": %s", v)
	}
	if v := OrDefault(log, "ENV_TEST_MISSING", "def"); v != "def" {
		t.Fatalf("Test OrDefault: Should have received \"def\": %s", v)
	}

	t.Setenv("ENV_TEST_DURATION", "3s")
	if d := DurationDefault(log, "ENV_TEST_DURATION", "1s"); d != 3*time.Second {
		t.Fatalf("Test DurationDefault: Should have received 3s: %s", d)
	}
	t.Setenv("ENV_TEST_DURATION", "soon")
	if d := DurationDefault(log, "ENV_TEST_DURATION", "1s"); d != time.Second {
		t.Fatalf("Test DurationDefault: Should fall back to 1s on invalid value: %s", d)
	}

	t.Setenv("ENV_TEST_INT", "x")
	if i := IntDefault(log, "ENV_TEST_INT", "4"); i != 4 {
		t.Fatalf("Test IntDefault: Should fall back to 4 on invalid value: %d", i)
	}

	t.Setenv("ENV_TEST_BOOL", "t")
	if b := BoolDefault(log, "ENV_TEST_BOOL", "f"); !b {
		t.Fatalf("Test BoolDefault: Should have received true")
	}
	if b := BoolDefault(log, "ENV_TEST_BOOL_MISSING", "f"); b {
		t.Fatalf("Test BoolDefault: Should have received false")
	}
}
