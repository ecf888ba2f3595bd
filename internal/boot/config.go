package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env            string `env:"ENV,default=dev"`
	HTTPAddress    string `env:"HTTP_ADDR,default=:8080"`
	MetricsAddress string `env:"METRICS_ADDR,default=:8081"`

	WhatsAppToken      string `env:"WHATSAPP_API_TOKEN,required"`
	WhatsAppBusinessID string `env:"WHATSAPP_BUSINESS_ID,default=573042612549118"`
	WhatsAppRecipient  string `env:"WHATSAPP_RECIPIENT,default=573214859572"`

	// RelayURL is where form submissions post the outbound message. It
	// defaults to this server's own relay endpoint.
	RelayURL string `env:"RELAY_URL,default=http://localhost:8080/api/send-whatsapp"`
}

func Load() (Config, error) {
	config := Config{}
	if err := envconfig.Process(context.Background(), &config); err != nil {
		return Config{}, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "dev"
}
