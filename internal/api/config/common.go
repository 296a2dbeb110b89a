package config

// Config 配置主体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Local   LocalConfig   `mapstructure:"local"`
	Content ContentConfig `mapstructure:"content"`
	Email   EmailConfig   `mapstructure:"email"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置，DSN 为空表示未配置远程存储
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// RedisConfig Redis 配置，Addr 为空表示未配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LocalConfig 本地文件存储配置，数据库缺失时的降级方案
type LocalConfig struct {
	Path string `mapstructure:"path"`
}

// ContentConfig 静态内容目录（项目、履历、证书）
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// EmailConfig 邮件发送配置（EmailJS 兼容接口）
type EmailConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	ServiceID  string `mapstructure:"service_id"`
	TemplateID string `mapstructure:"template_id"`
	PublicKey  string `mapstructure:"public_key"`
}
