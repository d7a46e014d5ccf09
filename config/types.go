package config

type config struct {
	Server server `yaml:"server" mapstructure:"server"`
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Minio  minio  `yaml:"minio" mapstructure:"minio"`
	Jwt    jwt    `yaml:"jwt" mapstructure:"jwt"`
}

type server struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type jwt struct {
	Secret string `yaml:"secret"`
}
