package systems

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
)

// loadRepoData 以仓库根目录的 data/ 初始化资源，并加载外星人属性与战役
func loadRepoData(t *testing.T) (*config.AlienStatsConfig, *config.CampaignConfig) {
	t.Helper()
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })

	stats, err := config.LoadAlienStats(config.AlienStatsPath)
	if err != nil {
		t.Fatalf("LoadAlienStats failed: %v", err)
	}
	campaign, err := config.LoadCampaign(config.CampaignPath)
	if err != nil {
		t.Fatalf("LoadCampaign failed: %v", err)
	}
	return stats, campaign
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
