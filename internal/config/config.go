package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`
	Port       int  `env:"PORT" envDefault:"9090"`

	Secret string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqResetEmailQueue string `env:"RABBITMQ_RESET_EMAIL_QUEUE" envDefault:"password-reset-emails"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PasswordResetTTL           time.Duration `env:"PASSWORD_RESET_TTL" envDefault:"30m"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL,required"`
	PasswordResetEmailSubject  string        `env:"PASSWORD_RESET_EMAIL_SUBJECT" envDefault:"Password reset"`
	PasswordResetEmailTemplate string        `env:"PASSWORD_RESET_EMAIL_TEMPLATE" envDefault:"<p>Follow the link to reset your password: <a href=\"${{ token }}\">${{ token }}</a></p>"`

	AccessTokenIssuer        string        `env:"ACCESS_TOKEN_ISSUER" envDefault:"accounts"`
	AccessTokenValidDuration time.Duration `env:"ACCESS_TOKEN_VALID_DURATION" envDefault:"24h"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
