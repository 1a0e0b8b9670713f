package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI             string `mapstructure:"uri"`
	Database        string `mapstructure:"database"`
	UsersCollection string `mapstructure:"users_collection"`
	MediaCollection string `mapstructure:"media_collection"`
}

type JWTConf struct {
	Secret  string `mapstructure:"secret"`
	TTLDays int    `mapstructure:"ttl_days"`
}

type SecurityConf struct {
	PasswordHashCost int `mapstructure:"password_hash_cost"`
}

type StorageConf struct {
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type UploadConf struct {
	StageDir     string `mapstructure:"stage_dir"`
	MaxSizeBytes int64  `mapstructure:"max_size_bytes"`
}

type RedisConf struct {
	Addr            string `mapstructure:"addr"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	StatsTTLSeconds int    `mapstructure:"stats_ttl_seconds"`
}

type KafkaConf struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type Config struct {
	App      AppConf      `mapstructure:"app"`
	Mongo    MongoConf    `mapstructure:"mongodb"`
	JWT      JWTConf      `mapstructure:"jwt"`
	Security SecurityConf `mapstructure:"security"`
	Storage  StorageConf  `mapstructure:"storage"`
	Upload   UploadConf   `mapstructure:"upload"`
	Redis    RedisConf    `mapstructure:"redis"`
	Kafka    KafkaConf    `mapstructure:"kafka"`

	// derived
	ShutdownTimeout time.Duration
	TokenTTL        time.Duration
	StorageTimeout  time.Duration
	StatsTTL        time.Duration
}

// Load reads the YAML config and applies environment overrides. The process
// must not serve with a missing signing key, store URI or media-host bucket,
// so those are hard errors here.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("mongodb.uri", "MONGO_URI")
	_ = v.BindEnv("storage.bucket", "STORAGE_BUCKET")
	_ = v.BindEnv("storage.region", "STORAGE_REGION")
	_ = v.BindEnv("storage.endpoint", "STORAGE_ENDPOINT")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("app.port", "APP_PORT")
	_ = v.BindEnv("app.env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret is required (set JWT_SECRET)")
	}
	if cfg.Mongo.URI == "" {
		return nil, errors.New("mongodb.uri is required (set MONGO_URI)")
	}
	if cfg.Storage.Bucket == "" {
		return nil, errors.New("storage.bucket is required (set STORAGE_BUCKET)")
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 5000
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "desipremium"
	}
	if cfg.Mongo.UsersCollection == "" {
		cfg.Mongo.UsersCollection = "users"
	}
	if cfg.Mongo.MediaCollection == "" {
		cfg.Mongo.MediaCollection = "media"
	}
	if cfg.JWT.TTLDays == 0 {
		cfg.JWT.TTLDays = 5
	}
	if cfg.Security.PasswordHashCost == 0 {
		cfg.Security.PasswordHashCost = 10
	}
	if cfg.Storage.TimeoutSeconds == 0 {
		cfg.Storage.TimeoutSeconds = 60
	}
	if cfg.Upload.MaxSizeBytes == 0 {
		cfg.Upload.MaxSizeBytes = 100 * 1000 * 1000
	}
	if cfg.Redis.StatsTTLSeconds == 0 {
		cfg.Redis.StatsTTLSeconds = 30
	}

	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.TokenTTL = time.Duration(cfg.JWT.TTLDays) * 24 * time.Hour
	cfg.StorageTimeout = time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
	cfg.StatsTTL = time.Duration(cfg.Redis.StatsTTLSeconds) * time.Second

	return &cfg, nil
}
