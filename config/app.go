package config

type App struct {
	Port       string `envconfig:"APP_PORT" default:"8080"`
	DataPath   string `envconfig:"DATA_PATH" default:"camprent.db"`
	JWTSecret  string `envconfig:"JWT_SECRET" default:"local_dev_secret"`
	GatewayURL string `envconfig:"PAYMENT_GATEWAY_URL"`
	GatewayKey string `envconfig:"PAYMENT_GATEWAY_KEY"`
	Env        string `envconfig:"APP_ENV" default:"dev"`
}
