package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// linkQueryFunc builds the listing document a link lookup runs against.
type linkQueryFunc func(fields []string) (*graphql.Query, error)

// listLinks runs the link lookup shared by the entity clients: list the
// entities with only "id" and "links" selected, then group the link rows
// by entity id. Entities matching the id filter always get a key, so
// callers can tell "no links" from "no such entity".
func listLinks(
	ctx context.Context,
	transport graphql.Transport,
	projectName string,
	buildQuery linkQueryFunc,
	idFilterKey string,
	entityKey string,
	entityIDs []string,
	opts *slate.LinkOptions,
) (map[string][]slate.Link, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.LinkOptions{}
	}

	output := make(map[string][]slate.Link)

	filters := map[string]any{"projectName": projectName}

	if entityIDs != nil {
		if len(entityIDs) == 0 {
			return output, nil
		}

		filters[idFilterKey] = dedupe(entityIDs)
	}

	matchable, err := prepareLinkFilters(filters, opts)
	if err != nil {
		return nil, err
	}

	if !matchable {
		return output, nil
	}

	query, err := buildQuery([]string{"id", "links"})
	if err != nil {
		return nil, err
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	stream := query.Stream(transport)
	for stream.HasNext() {
		result, err := stream.Next(ctx)
		if err != nil {
			return nil, err
		}

		for _, row := range rowsAt(result, "project", entityKey) {
			entityID, _ := row["id"].(string)
			if entityID == "" {
				continue
			}

			links, err := decodeLinks(row["links"])
			if err != nil {
				return nil, err
			}

			if _, seen := output[entityID]; !seen {
				output[entityID] = []slate.Link{}
			}

			output[entityID] = append(output[entityID], links...)
		}
	}

	return output, nil
}

// prepareLinkFilters folds link filters into the variable values map. The
// false return means the filters can never match and the call should
// short-circuit with an empty result.
func prepareLinkFilters(filters map[string]any, opts *slate.LinkOptions) (bool, error) {
	if opts.Types != nil {
		if len(opts.Types) == 0 {
			return false, nil
		}

		filters["linkTypes"] = dedupe(opts.Types)
	}

	if opts.Names != nil {
		if len(opts.Names) == 0 {
			return false, nil
		}

		filters["linkNames"] = dedupe(opts.Names)
	}

	if opts.Direction != "" {
		if opts.Direction != slate.LinkDirectionIn && opts.Direction != slate.LinkDirectionOut {
			return false, fmt.Errorf("%w: %q", slate.ErrInvalidLinkDirection, opts.Direction)
		}

		filters["linkDirection"] = opts.Direction
	}

	if opts.NameRegex != "" {
		filters["linkNameRegex"] = opts.NameRegex
	}

	return true, nil
}

// decodeLinks unpacks the merged link rows of one entity row.
func decodeLinks(value any) ([]slate.Link, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, nil
	}

	links := make([]slate.Link, 0, len(items))

	for _, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}

		link, err := decodeRow[slate.Link](row)
		if err != nil {
			return nil, err
		}

		links = append(links, link)
	}

	return links, nil
}
