package graph

import (
	"errors"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/tony-ross/netflix-catalog/internal/domains/movie"
)

var errInvalidMovieID = errors.New("invalid movie id")

// NewSchema builds the query/mutation schema over the movie service. The
// graph surface serves the same representations as the REST surface; the
// averageRating and reviewCount fields are resolved lazily per movie from
// the already-mapped review summaries.
func NewSchema(movies movie.Service) (graphql.Schema, error) {
	reviewSummaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReviewSummary",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"text":   &graphql.Field{Type: graphql.String},
			"rating": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"userName": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					summary, ok := p.Source.(movie.ReviewSummary)
					if !ok {
						return nil, nil
					}
					return summary.Username, nil
				},
			},
		},
	})

	movieType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"releaseDate": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*movie.MovieResponse).ReleaseDate, nil
				},
			},
			"genre":    &graphql.Field{Type: graphql.String},
			"director": &graphql.Field{Type: graphql.String},
			"reviews":  &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(reviewSummaryType)))},
			"averageRating": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := p.Source.(*movie.MovieResponse)
					if len(m.Reviews) == 0 {
						return nil, nil
					}
					sum := 0
					for _, r := range m.Reviews {
						sum += r.Rating
					}
					return float64(sum) / float64(len(m.Reviews)), nil
				},
			},
			"reviewCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return len(p.Source.(*movie.MovieResponse).Reviews), nil
				},
			},
		},
	})

	movieInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "MovieInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"releaseDate": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"genre":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"director":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"movies": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return movies.ListAll(p.Context)
				},
			},
			"movie": &graphql.Field{
				Type: movieType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := movieID(p.Args)
					if err != nil {
						return nil, err
					}
					return movies.GetByID(p.Context, id)
				},
			},
			"moviesByTitle": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return movies.FindByTitle(p.Context, p.Args["title"].(string))
				},
			},
			"moviesByGenre": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Args: graphql.FieldConfigArgument{
					"genre": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return movies.FindByGenre(p.Context, p.Args["genre"].(string))
				},
			},
			"moviesByDirector": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(movieType))),
				Args: graphql.FieldConfigArgument{
					"director": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return movies.FindByDirector(p.Context, p.Args["director"].(string))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(movieInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return movies.Create(p.Context, movieRequest(p.Args["input"]))
				},
			},
			"updateMovie": &graphql.Field{
				Type: graphql.NewNonNull(movieType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(movieInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := movieID(p.Args)
					if err != nil {
						return nil, err
					}
					return movies.Update(p.Context, id, movieRequest(p.Args["input"]))
				},
			},
			// deleteMovie returns true only on success; failures propagate
			// as GraphQL errors instead of collapsing into false.
			"deleteMovie": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := movieID(p.Args)
					if err != nil {
						return nil, err
					}
					if err := movies.Delete(p.Context, id); err != nil {
						return false, err
					}
					return true, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func movieID(args map[string]interface{}) (int64, error) {
	raw, _ := args["id"].(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidMovieID
	}
	return id, nil
}

func movieRequest(input interface{}) movie.CreateMovieRequest {
	fields, _ := input.(map[string]interface{})
	title, _ := fields["title"].(string)

	return movie.CreateMovieRequest{
		Title:       title,
		Description: optionalString(fields, "description"),
		ReleaseDate: optionalString(fields, "releaseDate"),
		Genre:       optionalString(fields, "genre"),
		Director:    optionalString(fields, "director"),
	}
}

func optionalString(fields map[string]interface{}, key string) *string {
	value, ok := fields[key].(string)
	if !ok {
		return nil
	}
	return &value
}
