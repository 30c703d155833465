package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMySQLDSN_URLForm(t *testing.T) {
	got := normalizeMySQLDSN("mysql://root:pw@127.0.0.1:3306/shop", "", "")
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/shop?charset=utf8mb4&parseTime=true", got)
}

func TestNormalizeMySQLDSN_JDBCPrefixAndOverrides(t *testing.T) {
	got := normalizeMySQLDSN("jdbc:mysql://ignored:ignored@db:3306/shop", "app", "s3cret")
	assert.Equal(t, "app:s3cret@tcp(db:3306)/shop?charset=utf8mb4&parseTime=true", got)
}

func TestNormalizeMySQLDSN_NativePassthrough(t *testing.T) {
	dsn := "root:pw@tcp(127.0.0.1:3306)/shop?parseTime=true"
	assert.Equal(t, dsn, normalizeMySQLDSN(dsn, "", ""))
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "sqlite"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
