package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/fatih/color"
	"github.com/google/go-github/v80/github"
	"golang.org/x/mod/semver"
)

type VersionUpdater struct {
	currentVersion string
	trans          *i18n.Translations
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

func NewVersionUpdater(version string, trans *i18n.Translations) *VersionUpdater {
	return &VersionUpdater{
		currentVersion: version,
		trans:          trans,
	}
}

// CheckForUpdates avisa si hay una versión más nueva publicada en GitHub.
// El resultado se cachea 24hs para no pegarle a la API en cada corrida.
func (v *VersionUpdater) CheckForUpdates(ctx context.Context) {
	if os.Getenv("MAILMATE_DISABLE_UPDATE_CHECK") != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, "Tomas-vilte", "MailMate")
	if err != nil || release.TagName == nil {
		return
	}

	latest := *release.TagName
	_ = v.saveCache(UpdateCache{LastCheck: time.Now(), LatestKnown: latest})

	if v.isUpdateAvailable(latest) {
		v.printUpdateNotification(latest)
	}
}

func (v *VersionUpdater) isUpdateAvailable(latest string) bool {
	if !semver.IsValid(latest) || !semver.IsValid(v.currentVersion) {
		return false
	}
	return semver.Compare(latest, v.currentVersion) > 0
}

func (v *VersionUpdater) printUpdateNotification(latest string) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintln(os.Stderr, v.trans.GetMessage("update.available", 0, map[string]interface{}{
		"Latest":  latest,
		"Current": v.currentVersion,
	}))
	_, _ = fmt.Fprintln(os.Stderr, v.trans.GetMessage("update.run_hint", 0, nil))
}

func (v *VersionUpdater) cachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mailmate", "update_check.json"), nil
}

func (v *VersionUpdater) loadCache() (*UpdateCache, error) {
	path, err := v.cachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

func (v *VersionUpdater) saveCache(cache UpdateCache) error {
	path, err := v.cachePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
