package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s)", a.manager.State())
}

// Root attempts a login (saved sessions make this silent) and then runs the
// interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to fingate CLI (type 'help' for commands)")

	_ = a.Login(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
