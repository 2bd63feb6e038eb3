package cli

import (
	"context"
	"fmt"
)

// Tags lists the household transaction tags.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.finance.Tags(ctx)
	if err != nil {
		a.log.Error(ctx, "listing tags failed", "error", err)
		return err
	}

	for _, tag := range tags {
		fmt.Printf("%-36s  %-20s  %s  (%d transactions)\n",
			tag.ID, tag.Name, tag.Color, tag.TransactionCount)
	}
	return nil
}

// TagAdd creates a tag: "tagadd <name> <#RRGGBB>".
func (a *App) TagAdd(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: tagadd <name> <#RRGGBB>")
		return nil
	}

	tag, err := a.finance.CreateTag(ctx, args[0], args[1])
	if err != nil {
		a.log.Error(ctx, "creating tag failed", "error", err)
		return err
	}
	if tag != nil {
		fmt.Printf("Created tag %s (%s)\n", tag.Name, tag.ID)
	}
	return nil
}

// TagDel removes a tag: "tagdel <tag-id>".
func (a *App) TagDel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: tagdel <tag-id>")
		return nil
	}

	if err := a.finance.DeleteTag(ctx, args[0]); err != nil {
		a.log.Error(ctx, "deleting tag failed", "error", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// SetTags replaces the tags on a transaction:
// "settags <transaction-id> [tag-id ...]". No tag IDs clears them all.
func (a *App) SetTags(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: settags <transaction-id> [tag-id ...]")
		return nil
	}

	if err := a.finance.SetTransactionTags(ctx, args[0], args[1:]); err != nil {
		a.log.Error(ctx, "setting tags failed", "error", err)
		return err
	}
	fmt.Println("Tags updated.")
	return nil
}
