// Package gateway serves the MightyInference gRPC API.
//
// Every RPC validates its request, forwards it to an inference.Client and
// converts the result into the wire response. Backend failures become gRPC
// statuses through ToStatus:
//
//	invalid argument, backend rejected  -> InvalidArgument
//	backend unreachable                 -> Unavailable
//	backend protocol error              -> Internal
//	not implemented                     -> Unimplemented
//
// The server also exposes grpc.health.v1. With a probe interval configured it
// periodically checks the backend and publishes SERVING or NOT_SERVING for
// the inference service.
package gateway
