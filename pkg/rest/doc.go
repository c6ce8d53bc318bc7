// Package rest implements inference.Client against the REST API of the
// inference server.
//
// Every operation is a single HTTP request below a configured base URL.
// Inputs are forwarded unchanged, either as a JSON object in a POST body
// (request mode "json") or as query parameters of a GET request (request
// mode "query"). Results are read from configurable JSON keys; each key is
// a list of aliases so that server versions with different field names can
// be served without code changes.
//
// Default endpoints:
//
//	GET  /healthcheck
//	GET  /metadata
//	POST /embeddings               {"text": "..."}
//	POST /question-answering       {"question": "...", "context": "..."}
//	POST /sentence-transformers    {"text": "..."}
//	POST /sequence-classification  {"text": "..."}
//	POST /token-classification     {"text": "..."}
//
// Basic Usage:
//
//	client, err := rest.NewClient(rest.Config{BaseURL: "http://localhost:5050"}, log, tr, m)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	res, err := client.Embeddings(ctx, inference.TextRequest{Text: "hello"})
//
// Error Handling:
//
// Failures are *inference.BackendError values. Transport failures, timeouts
// and 5xx responses are ErrBackendUnreachable, 4xx responses are
// ErrBackendRejected, and any response that does not decode into the
// expected result is ErrBackendProtocol. No call is retried.
//
// Timing:
//
// The Took field of every result is measured locally from just before the
// request is sent until the response has been decoded. Timing reported by
// the server is ignored.
package rest
