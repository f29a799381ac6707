package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// NewProductsCommand creates the products command group
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
		Long:    "List and inspect products within a project",
	}

	cmd.AddCommand(newProductsListCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		project      string
		productTypes []string
		folderIDs    []string
		nameRegex    string
		statuses     []string
		fields       []string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, err := resolveProject(project)
			if err != nil {
				return err
			}

			slateClient, err := createClient()
			if err != nil {
				return err
			}

			opts := &slate.ProductListOptions{
				ProductTypes: productTypes,
				FolderIDs:    folderIDs,
				NameRegex:    nameRegex,
				Statuses:     statuses,
				Active:       boolFlag(cmd, "active"),
				Fields:       fields,
				Limit:        limit,
			}

			products, err := slateClient.Products().List(cmd.Context(), projectName, opts)
			if err != nil {
				return fmt.Errorf("listing products: %w", err)
			}

			renderer := OutputRenderer[[]slate.Product]{
				RenderTable: renderProductsTable,
			}

			return renderer.Render(products)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")
	cmd.Flags().StringSliceVar(&productTypes, "type", nil, "filter by product type")
	cmd.Flags().StringSliceVar(&folderIDs, "folder", nil, "filter by folder id")
	cmd.Flags().StringVar(&nameRegex, "name-regex", "", "filter by name regex")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status")
	cmd.Flags().Bool("active", true, "filter by active flag")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "attribute fields to fetch (dotted paths)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of products")

	return cmd
}

func renderProductsTable(products []slate.Product) error {
	rows := make([][]string, 0, len(products))
	for _, product := range products {
		rows = append(rows, []string{
			product.ID,
			product.Name,
			product.ProductType,
			product.FolderID,
			product.Status,
		})
	}

	return renderTableRows([]string{"ID", "Name", "Type", "Folder", "Status"}, rows)
}
