package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
server:
  port: 9090
database:
  driver: postgres
  host: db.internal
  port: 5432
  user: dxter
  password: secret
  name: dxter
classifier:
  provider: openai
  apiKey: test-key
  model: gpt-4o-mini
minio:
  enabled: true
  endpoint: minio.internal:9000
  accessKey: ak
  secretKey: sk
  bucketName: transcripts
  region: us-east-1
rateLimit:
  capacity: 50
  refillRate: 25
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %s", cfg.Database.Driver)
	}
	if cfg.Classifier.Provider != "openai" || cfg.Classifier.Model != "gpt-4o-mini" {
		t.Errorf("classifier = %+v", cfg.Classifier)
	}
	if !cfg.Minio.Enabled || cfg.Minio.BucketName != "transcripts" {
		t.Errorf("minio = %+v", cfg.Minio)
	}
	if cfg.RateLimit.Capacity != 50 {
		t.Errorf("rate limit = %+v", cfg.RateLimit)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server: {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Classifier.Provider != "rules" {
		t.Errorf("default provider = %s, want rules", cfg.Classifier.Provider)
	}
	if cfg.RateLimit.Capacity != 30 || cfg.RateLimit.RefillRate != 10 {
		t.Errorf("default rate limit = %+v", cfg.RateLimit)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("default sslmode = %s", cfg.Database.SSLMode)
	}
}

func TestDSNHelpers(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	wantPG := "host=db.internal port=5432 user=dxter password=secret dbname=dxter sslmode=disable"
	if got := cfg.PostgresDSN(); got != wantPG {
		t.Errorf("PostgresDSN = %q, want %q", got, wantPG)
	}
	wantMy := "dxter:secret@tcp(db.internal:5432)/dxter?parseTime=true&charset=utf8mb4&loc=UTC"
	if got := cfg.MySQLDSN(); got != wantMy {
		t.Errorf("MySQLDSN = %q, want %q", got, wantMy)
	}
}
