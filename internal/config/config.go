package config

import (
	"os"
	"strconv"
	"time"
)

// Configは各サービス共通の設定。サービスごとに必要なフィールドだけ使う。
type Config struct {
	Port   string // サーバーポート
	APIKey string // 共有シークレット（X-API-Key）

	DBPath string // SQLiteファイルパス（DATABASE_URLがあればそちらを優先）

	CatalogURL string // CartからみたCatalogのURL
	OrderURL   string // PaymentからみたOrderのURL

	HTTPTimeout      time.Duration // 下流呼び出しのタイムアウト
	ValidationPolicy string        // fail_open / fail_closed
}

// Load は環境変数を読む。ローカル開発用のデフォルト付き。
func Load(defaultPort string, defaultDBPath string) Config {
	return Config{
		Port:   getenv("PORT", defaultPort),
		APIKey: getenv("API_KEY", "dev_api_key_change_me"),

		DBPath: getenv("DB_PATH", defaultDBPath),

		CatalogURL: getenv("CATALOG_URL", "http://localhost:8081"),
		OrderURL:   getenv("ORDER_URL", "http://localhost:8083"),

		HTTPTimeout:      time.Duration(getenvInt("HTTP_TIMEOUT_SECONDS", 5)) * time.Second,
		ValidationPolicy: getenv("VALIDATION_POLICY", "fail_open"),
	}
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
