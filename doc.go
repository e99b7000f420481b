// Package folio is a read-only client for the Shakespeare play catalog
// indexed in a hosted Typesense cluster.
//
// The search service has no joins, so the client fetches a play's
// characters, acts and scenes one call at a time and assembles them
// next to the matching speeches.
//
//	client, err := folio.New(
//	    folio.WithTypesense(os.Getenv("TYPESENSE_HOST"), os.Getenv("TYPESENSE_API_KEY")),
//	)
//	works, _ := client.Works().List(ctx)
//	res, _ := client.Speeches().Search(ctx, "play-hamlet", "to be", folio.WithPageSize(50))
//	fmt.Println(res.Found, res.TotalPages)
//
// Every call is sequential and is attempted once. Callers that need a
// deadline put it on the context.
package folio
