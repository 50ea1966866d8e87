package config

// Config is the top-level configuration body
type Config struct {
	Server            ServerConfig       `mapstructure:"server"`
	DB                DBConfig           `mapstructure:"database"`
	Redis             RedisConfig        `mapstructure:"redis"`
	Mongo             MongoConfig        `mapstructure:"mongo"`
	Elastic           ElasticConfig      `mapstructure:"elastic"`
	MinIO             MinIOConfig        `mapstructure:"minio"`
	Mail              MailConfig         `mapstructure:"mail"`
	Live              LiveConfig         `mapstructure:"live"`
	LLM               LLMConfig          `mapstructure:"llm"`
	Logstash          LogstashConfig     `mapstructure:"logstash"`
	Kafka             KafkaConfig        `mapstructure:"kafka"`
	KafkaPostConsumer KafkaConsumerTopic `mapstructure:"kafka_post_consumer"`
	KafkaUserConsumer KafkaConsumerTopic `mapstructure:"kafka_user_consumer"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig Postgres connection settings
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elasticsearch settings
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

type ElasticIndices struct {
	UserIndex string `mapstructure:"user_index"`
	PostIndex string `mapstructure:"post_index"`
}

// MinIOConfig object storage settings (read side only; uploads are handled elsewhere)
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MediaBucket      string `mapstructure:"media_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

// MailConfig transactional email provider settings
type MailConfig struct {
	APIURL  string `mapstructure:"api_url"`
	APIKey  string `mapstructure:"api_key"`
	From    string `mapstructure:"from"`
	Enabled bool   `mapstructure:"enabled"`
}

// LiveConfig SFU token settings
type LiveConfig struct {
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	WSURL     string `mapstructure:"ws_url"`
	TokenTTL  int    `mapstructure:"token_ttl"`
}

type LLMConfig struct {
	URL       string `mapstructure:"url"`
	TextModel string `mapstructure:"text_model"`
	ApiKey    string `mapstructure:"api_key"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaConsumerTopic struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
