package seed

import (
	"fmt"
	"strings"

	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// PrivateAssetPrefix is the object-storage path prefix restricted to
// authenticated subjects. Podcast audio lives under it.
const PrivateAssetPrefix = "private/"

// IsPrivateAssetPath reports whether the path is under the restricted
// object-storage prefix.
func IsPrivateAssetPath(path string) bool {
	return strings.HasPrefix(path, PrivateAssetPrefix)
}

// PodcastPayload is the opaque output of the script-generation feed: a
// produced episode's presentation fields and its audio reference.
type PodcastPayload struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	AudioFullPath string `json:"audio_full_path"`
	DurationSec   int64  `json:"duration_sec"`
}

// IngestPodcast writes a script-feed payload for a country through the
// normal insert path, returning the new row id. The audio reference must
// live under the private asset prefix.
func IngestPodcast(exec *sqlite.Executor, countryID string, payload PodcastPayload) (string, error) {
	if payload.AudioFullPath != "" && !IsPrivateAssetPath(payload.AudioFullPath) {
		return "", fmt.Errorf("%w: audio path %q must be under %s",
			types.ErrInvalidData, payload.AudioFullPath, PrivateAssetPrefix)
	}
	episode := &types.CountryPodcast{
		CountryID:     countryID,
		Title:         payload.Title,
		Subtitle:      payload.Subtitle,
		AudioFullPath: payload.AudioFullPath,
		DurationSec:   payload.DurationSec,
	}
	return exec.Insert(types.Service(), types.TableCountryPodcasts, episode.Row())
}
