package exec

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// Executor resolves operations against the reservation schema. It is the
// graphql.ExecutableSchema behind the gqlgen server: gqlgen parses,
// validates and coerces variables, the executor resolves fields.
type Executor struct {
	schema    *ast.Schema
	resolvers ResolverRoot
}

var _ graphql.ExecutableSchema = (*Executor)(nil)

// NewExecutor creates an executor
func NewExecutor(resolvers ResolverRoot) *Executor {
	return &Executor{
		schema:    parsedSchema,
		resolvers: resolvers,
	}
}

// Schema returns the parsed schema
func (e *Executor) Schema() *ast.Schema {
	return e.schema
}

// Complexity reports no custom field costs
func (e *Executor) Complexity(ctx context.Context, typeName, fieldName string, childComplexity int, args map[string]any) (int, bool) {
	return 0, false
}

// Exec runs the operation stored in ctx by the gqlgen executor
func (e *Executor) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{Executor: e, opCtx: opCtx, errors: &errorCollector{}}

	var root func(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = ec.queryRoot
	case ast.Mutation:
		root = ec.mutationRoot
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data := root(ctx, opCtx.Operation.SelectionSet)
		for _, err := range ec.errors.list() {
			graphql.AddError(ctx, err)
		}

		if data == nil {
			return &graphql.Response{Data: []byte("null")}
		}
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// errorCollector gathers field errors from concurrently resolved fields
type errorCollector struct {
	mu     sync.Mutex
	errors gqlerror.List
}

func (c *errorCollector) add(ctx context.Context, path ast.Path, err error) {
	errType, code := apperrors.TypeOf(err)
	if errType == apperrors.ErrorTypeInternal {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("path", path.String()).Msg("GraphQL field failed")
	}

	gqlErr := &gqlerror.Error{
		Message:    apperrors.MessageOf(err),
		Path:       append(ast.Path(nil), path...),
		Extensions: map[string]interface{}{"code": string(code)},
	}

	c.mu.Lock()
	c.errors = append(c.errors, gqlErr)
	c.mu.Unlock()
}

// list returns the errors ordered by path
func (c *errorCollector) list() gqlerror.List {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.errors) == 0 {
		return nil
	}
	sort.SliceStable(c.errors, func(i, j int) bool {
		return c.errors[i].Path.String() < c.errors[j].Path.String()
	})
	return c.errors
}
