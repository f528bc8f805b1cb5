package cmd

import (
	"fmt"

	"github.com/nauta-treinamentos/nauta/internal/app"
	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/certificates"
	"github.com/nauta-treinamentos/nauta/internal/player"
	"github.com/nauta-treinamentos/nauta/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	issuer := certificates.NewIssuer(st.CertificateRepo())
	engine := player.New(cat, st.ProgressRepo())
	engine.OnCourseCompleted(issuer.OnCourseCompleted)

	return app.Run(app.Options{
		Engine: engine,
		Issuer: issuer,
	})
}

// resolveCatalog loads the catalog named by --catalog, or the embedded one.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}
