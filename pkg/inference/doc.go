// Package inference defines the capability contract between the gateway and
// whatever performs the actual model inference.
//
// The package holds three things:
//   - the request and result value types shared by every backend
//   - the Client interface, one method per inference operation
//   - the error taxonomy every backend reports failures in
//
// Backends live in their own packages (rest, binary) and are selected at
// startup by the backend package. The gateway only ever sees a Client.
//
// Error Handling:
//
// Every failure returned by a Client matches exactly one of the sentinel
// errors through errors.Is:
//
//	res, err := client.Embeddings(ctx, inference.TextRequest{Text: "hello"})
//	switch {
//	case errors.Is(err, inference.ErrBackendUnreachable):
//		// connection refused, timeout, 5xx
//	case errors.Is(err, inference.ErrBackendRejected):
//		// 4xx from the inference server
//	case errors.Is(err, inference.ErrBackendProtocol):
//		// response body did not have the expected shape
//	case errors.Is(err, inference.ErrNotImplemented):
//		// backend variant lacks this operation
//	}
//
// Testing:
//
// MockClient is generated with mockgen and doubles as a call-count spy.
package inference
