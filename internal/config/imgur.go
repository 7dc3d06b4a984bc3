package config

import "time"

type Imgur struct {
	UploadURL string `env:"IMGUR_UPLOAD_URL" envDefault:"https://api.imgur.com/3/image"`
	ClientID  string `env:"IMGUR_CLIENT_ID" envDefault:"546c25a59c58ad7"`

	// UploadDelay is the minimum interval between successive upload calls.
	UploadDelay time.Duration `env:"IMGUR_UPLOAD_DELAY" envDefault:"500ms"`
	Timeout     time.Duration `env:"IMGUR_TIMEOUT" envDefault:"30s"`
}
