//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("SNIP_LOG_FILE", "")
	// unset, restored when the test ends
	t.Setenv("SNIP_DEBUG", "")
	os.Unsetenv("SNIP_DEBUG")
	t.Setenv("SNIP_TEXT", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if cfg.LogFile != filepath.Join("/home/tester", ".sniplog") {
		t.Errorf("Unexpected log file '%s'", cfg.LogFile)
	}
	if cfg.Debug {
		t.Errorf("Debug should be off by default")
	}
	if cfg.Text != "" {
		t.Errorf("Unexpected text '%s'", cfg.Text)
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("SNIP_LOG_FILE", "/tmp/snip.log")
	t.Setenv("SNIP_DEBUG", "true")
	t.Setenv("SNIP_TEXT", "Hello World")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if cfg.LogFile != "/tmp/snip.log" || !cfg.Debug || cfg.Text != "Hello World" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestInvalidDebug(t *testing.T) {
	t.Setenv("SNIP_DEBUG", "sometimes")
	if _, err := Load(); err == nil {
		t.Errorf("Expected an error for an invalid boolean")
	}
}
