package screener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/storage"
)

// MetadataURISource resolves a mint to its off-chain metadata URI.
type MetadataURISource interface {
	TokenMetadataURI(ctx context.Context, mint string) (string, error)
}

// Socials resolves launchpad social links from Metaplex metadata. The
// metadata JSON usually lives on IPFS; ipfs:// URIs go through the local
// IPFS daemon when one is configured, gateway URLs over plain HTTP.
// Results are cached on disk: metadata is immutable once minted.
type Socials struct {
	uris  MetadataURISource
	cache *storage.CacheClient
	ipfs  *shell.Shell
	http  *http.Client
	log   *zap.SugaredLogger
}

func NewSocials(uris MetadataURISource, cache *storage.CacheClient, ipfsAddr string, log *zap.SugaredLogger) *Socials {
	s := &Socials{
		uris:  uris,
		cache: cache,
		http:  &http.Client{Timeout: 10 * time.Second},
		log:   log,
	}
	if ipfsAddr != "" {
		s.ipfs = shell.NewShell(ipfsAddr)
	}
	return s
}

type tokenMetadata struct {
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
	Telegram string `json:"telegram"`
}

// SocialLinks returns the social links for a mint, empty when the token
// has no off-chain metadata. Lookup failures return empty links and no
// error; socials are decorative.
func (s *Socials) SocialLinks(ctx context.Context, mint string) (models.SocialLinks, error) {
	var links models.SocialLinks

	if s.cache != nil {
		if ok, err := s.cache.Get("socials:"+mint, &links); err == nil && ok {
			return links, nil
		}
	}

	uri, err := s.uris.TokenMetadataURI(ctx, mint)
	if err != nil || uri == "" {
		return links, nil
	}

	data, err := s.fetch(ctx, uri)
	if err != nil {
		s.log.Debugf("socials: metadata fetch failed for %s: %v", mint, err)
		return links, nil
	}

	var meta tokenMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return links, nil
	}
	links = models.SocialLinks{Twitter: meta.Twitter, Website: meta.Website, Telegram: meta.Telegram}

	if s.cache != nil && !links.Empty() {
		_ = s.cache.Put("socials:"+mint, links)
	}
	return links, nil
}

func (s *Socials) fetch(ctx context.Context, uri string) ([]byte, error) {
	if path, ok := strings.CutPrefix(uri, "ipfs://"); ok && s.ipfs != nil {
		rc, err := s.ipfs.Cat("/ipfs/" + path)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(io.LimitReader(rc, 1<<20))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata fetch: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
