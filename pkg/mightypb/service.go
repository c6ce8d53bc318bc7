package mightypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified name of the inference service.
const ServiceName = "mighty_inference_server.MightyInference"

const (
	MightyInference_Embeddings_FullMethodName             = "/" + ServiceName + "/Embeddings"
	MightyInference_QuestionAnswering_FullMethodName      = "/" + ServiceName + "/QuestionAnswering"
	MightyInference_SentenceTransformers_FullMethodName   = "/" + ServiceName + "/SentenceTransformers"
	MightyInference_SequenceClassification_FullMethodName = "/" + ServiceName + "/SequenceClassification"
	MightyInference_TokenClassification_FullMethodName    = "/" + ServiceName + "/TokenClassification"
	MightyInference_Metadata_FullMethodName               = "/" + ServiceName + "/Metadata"
	MightyInference_HealthCheck_FullMethodName            = "/" + ServiceName + "/HealthCheck"
)

// MightyInferenceServer is the server API of the inference service.
type MightyInferenceServer interface {
	Embeddings(context.Context, *TextRequest) (*EmbeddingsResponse, error)
	QuestionAnswering(context.Context, *QuestionAnswerRequest) (*QuestionAnswerResponse, error)
	SentenceTransformers(context.Context, *TextRequest) (*SentenceTransformersResponse, error)
	SequenceClassification(context.Context, *TextRequest) (*SequenceClassificationResponse, error)
	TokenClassification(context.Context, *TextRequest) (*TokenClassificationResponse, error)
	Metadata(context.Context, *Empty) (*MetadataResponse, error)
	HealthCheck(context.Context, *Empty) (*HealthcheckResponse, error)
}

// UnimplementedMightyInferenceServer answers every method with
// codes.Unimplemented. Embed it to stay source compatible when methods are added.
type UnimplementedMightyInferenceServer struct{}

func (UnimplementedMightyInferenceServer) Embeddings(context.Context, *TextRequest) (*EmbeddingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Embeddings not implemented")
}
func (UnimplementedMightyInferenceServer) QuestionAnswering(context.Context, *QuestionAnswerRequest) (*QuestionAnswerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QuestionAnswering not implemented")
}
func (UnimplementedMightyInferenceServer) SentenceTransformers(context.Context, *TextRequest) (*SentenceTransformersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SentenceTransformers not implemented")
}
func (UnimplementedMightyInferenceServer) SequenceClassification(context.Context, *TextRequest) (*SequenceClassificationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SequenceClassification not implemented")
}
func (UnimplementedMightyInferenceServer) TokenClassification(context.Context, *TextRequest) (*TokenClassificationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TokenClassification not implemented")
}
func (UnimplementedMightyInferenceServer) Metadata(context.Context, *Empty) (*MetadataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Metadata not implemented")
}
func (UnimplementedMightyInferenceServer) HealthCheck(context.Context, *Empty) (*HealthcheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthCheck not implemented")
}

// RegisterMightyInferenceServer registers srv on s. The server must be
// created with grpc.ForceServerCodec(Codec{}).
func RegisterMightyInferenceServer(s grpc.ServiceRegistrar, srv MightyInferenceServer) {
	s.RegisterService(&MightyInference_ServiceDesc, srv)
}

// unaryHandler adapts one typed server method to a grpc.MethodDesc handler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(MightyInferenceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			// grpc reports undecodable requests as Internal; they are the caller's fault
			if st := status.Convert(err); st.Code() == codes.Internal {
				return nil, status.Error(codes.InvalidArgument, st.Message())
			}
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MightyInferenceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MightyInferenceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MightyInference_ServiceDesc is the grpc.ServiceDesc of the inference service.
var MightyInference_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MightyInferenceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Embeddings",
			Handler:    unaryHandler(MightyInference_Embeddings_FullMethodName, MightyInferenceServer.Embeddings),
		},
		{
			MethodName: "QuestionAnswering",
			Handler:    unaryHandler(MightyInference_QuestionAnswering_FullMethodName, MightyInferenceServer.QuestionAnswering),
		},
		{
			MethodName: "SentenceTransformers",
			Handler:    unaryHandler(MightyInference_SentenceTransformers_FullMethodName, MightyInferenceServer.SentenceTransformers),
		},
		{
			MethodName: "SequenceClassification",
			Handler:    unaryHandler(MightyInference_SequenceClassification_FullMethodName, MightyInferenceServer.SequenceClassification),
		},
		{
			MethodName: "TokenClassification",
			Handler:    unaryHandler(MightyInference_TokenClassification_FullMethodName, MightyInferenceServer.TokenClassification),
		},
		{
			MethodName: "Metadata",
			Handler:    unaryHandler(MightyInference_Metadata_FullMethodName, MightyInferenceServer.Metadata),
		},
		{
			MethodName: "HealthCheck",
			Handler:    unaryHandler(MightyInference_HealthCheck_FullMethodName, MightyInferenceServer.HealthCheck),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mighty_inference.proto",
}

// MightyInferenceClient is the client API of the inference service.
type MightyInferenceClient interface {
	Embeddings(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*EmbeddingsResponse, error)
	QuestionAnswering(ctx context.Context, in *QuestionAnswerRequest, opts ...grpc.CallOption) (*QuestionAnswerResponse, error)
	SentenceTransformers(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*SentenceTransformersResponse, error)
	SequenceClassification(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*SequenceClassificationResponse, error)
	TokenClassification(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*TokenClassificationResponse, error)
	Metadata(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MetadataResponse, error)
	HealthCheck(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*HealthcheckResponse, error)
}

type mightyInferenceClient struct {
	cc grpc.ClientConnInterface
}

// NewMightyInferenceClient returns a client stub. Calls use Codec{}
// regardless of the connection's default codec.
func NewMightyInferenceClient(cc grpc.ClientConnInterface) MightyInferenceClient {
	return &mightyInferenceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mightyInferenceClient) Embeddings(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*EmbeddingsResponse, error) {
	return invoke[EmbeddingsResponse](ctx, c.cc, MightyInference_Embeddings_FullMethodName, in, opts)
}

func (c *mightyInferenceClient) QuestionAnswering(ctx context.Context, in *QuestionAnswerRequest, opts ...grpc.CallOption) (*QuestionAnswerResponse, error) {
	return invoke[QuestionAnswerResponse](ctx, c.cc, MightyInference_QuestionAnswering_FullMethodName, in, opts)
}

func (c *mightyInferenceClient) SentenceTransformers(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*SentenceTransformersResponse, error) {
	return invoke[SentenceTransformersResponse](ctx, c.cc, MightyInference_SentenceTransformers_FullMethodName, in, opts)
}

func (c *mightyInferenceClient) SequenceClassification(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*SequenceClassificationResponse, error) {
	return invoke[SequenceClassificationResponse](ctx, c.cc, MightyInference_SequenceClassification_FullMethodName, in, opts)
}

func (c *mightyInferenceClient) TokenClassification(ctx context.Context, in *TextRequest, opts ...grpc.CallOption) (*TokenClassificationResponse, error) {
	return invoke[TokenClassificationResponse](ctx, c.cc, MightyInference_TokenClassification_FullMethodName, in, opts)
}

func (c *mightyInferenceClient) Metadata(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*MetadataResponse, error) {
	return invoke[MetadataResponse](ctx, c.cc, MightyInference_Metadata_FullMethodName, in, opts)
}

func (c *mightyInferenceClient) HealthCheck(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*HealthcheckResponse, error) {
	return invoke[HealthcheckResponse](ctx, c.cc, MightyInference_HealthCheck_FullMethodName, in, opts)
}
