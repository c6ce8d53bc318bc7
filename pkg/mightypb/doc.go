// Package mightypb holds the RPC contract of the inference gateway: the
// message types of proto/mighty_inference.proto, their protobuf wire
// encoding, the gRPC service descriptor and a client stub.
//
// Messages encode to the exact bytes protoc-generated code produces, so any
// client generated from the .proto file interoperates with the gateway.
// Decoding accepts packed and unpacked repeated floats and skips unknown
// fields.
//
// Server side:
//
//	srv := grpc.NewServer(grpc.ForceServerCodec(mightypb.Codec{}))
//	mightypb.RegisterMightyInferenceServer(srv, impl)
//
// Client side:
//
//	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
//	client := mightypb.NewMightyInferenceClient(conn)
//	res, err := client.Embeddings(ctx, &mightypb.TextRequest{Text: "hello"})
package mightypb
