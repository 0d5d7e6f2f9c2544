// Package crawl implements the crawl command: it walks the product
// catalog and writes the raw record file.
package crawl

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/cleverscrape/cmd/common"
	"github.com/jonesrussell/cleverscrape/internal/spider"
)

// Command returns the crawl command for use in the root command.
func Command() *cobra.Command {
	var maxItems int

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl the product catalog into raw JSON records",
		Long: `This command crawls the configured catalog website, extracts one raw
record per product page, and writes the collection to the raw output file.

The --max-items flag overrides the crawler.max_items setting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxItems > 0 {
				viper.Set("crawler.max_items", maxItems)
			}

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			s, err := spider.New(&deps.Config.Crawler, deps.Logger)
			if err != nil {
				return fmt.Errorf("failed to create spider: %w", err)
			}

			deps.Logger.Info("Crawl starting",
				"start_url", deps.Config.Crawler.StartURL,
				"max_items", deps.Config.Crawler.MaxItems,
			)

			items, err := s.Run()
			if err != nil {
				return fmt.Errorf("crawl failed: %w", err)
			}

			if err := spider.WriteRaw(deps.Config.Output.Raw, items); err != nil {
				return err
			}

			deps.Logger.Info("Raw records written",
				"path", deps.Config.Output.Raw,
				"items", len(items),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxItems, "max-items", 0, "override the maximum number of items to emit")

	return cmd
}
