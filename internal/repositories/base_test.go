package repositories

import (
	"os"
	"testing"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
