package app

import (
	"recs-data/internal/adapters"
	"recs-data/internal/core"
	"recs-data/internal/ports"
)

const (
	DefaultBaseURL       = "https://www.eia.gov/consumption/residential/data/2015/hc/"
	DefaultMicrodataURL  = "https://www.eia.gov/consumption/residential/data/2015/csv/recs2015_public_v4.csv"
	MicrodataFileName    = "hc_raw.csv"
	DefaultCacheDir      = "."
	DefaultHTTPTimeout   = 0
)

type Config struct {
	CacheDir     string
	BaseURL      string
	MicrodataURL string
	HTTPTimeout  int
	CatalogFiles []string
}

type Service struct {
	Catalog      ports.CatalogPort
	Fetcher      ports.FetcherPort
	Workbooks    ports.WorkbookLoaderPort
	FrameLoader  ports.FrameLoaderPort
	Resolver     core.PathResolverCore
	BaseURL      string
	MicrodataURL string
}

// NewService wires the default adapters. Catalog overlay files are
// loaded in order on top of the compiled-in catalog.
func NewService(cfg Config) (Service, error) {
	catalog, err := adapters.NewSchemaCatalogAdapter()
	if err != nil {
		return Service{}, err
	}
	for _, path := range cfg.CatalogFiles {
		if err := catalog.LoadOverlay(path); err != nil {
			return Service{}, err
		}
	}
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = DefaultCacheDir
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	microdataURL := cfg.MicrodataURL
	if microdataURL == "" {
		microdataURL = DefaultMicrodataURL
	}
	return Service{
		Catalog:      catalog,
		Fetcher:      adapters.NewHTTPCacheAdapter(cacheDir, cfg.HTTPTimeout),
		Workbooks:    adapters.NewExcelizeWorkbookAdapter(),
		FrameLoader:  adapters.NewMicrodataCSVAdapter(),
		Resolver:     core.NewPathResolverCore(),
		BaseURL:      baseURL,
		MicrodataURL: microdataURL,
	}, nil
}
