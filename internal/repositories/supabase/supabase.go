// Package supabase implements the gateway on Supabase's PostgREST API
// through nedpals/supabase-go.
package supabase

import (
	"context"

	supa "github.com/nedpals/supabase-go"

	"github.com/yoockh/jobboard/internal/repositories"
)

// executor is the terminal step shared by every postgrest request builder.
type executor interface {
	ExecuteWithContext(ctx context.Context, r interface{}) error
}

// execute runs the request bound to ctx. A request cut short by ctx reports
// ctx's error rather than the transport's.
func execute(ctx context.Context, req executor, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := req.ExecuteWithContext(ctx, out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return ctx.Err()
}

// NewSet wires every supabase repository on one client.
func NewSet(client *supa.Client) repositories.Set {
	return repositories.Set{
		Profiles:     NewProfileRepo(client),
		Companies:    NewCompanyRepo(client),
		Jobs:         NewJobRepo(client),
		Applications: NewApplicationRepo(client),
	}
}
