package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Aleph-Alpha/inference-gateway/pkg/mightypb"
)

type probeResult struct {
	Healthy  bool              `json:"healthy"`
	Metadata map[string]string `json:"metadata"`
	Shape    []int32           `json:"embedding_shape"`
	TookMs   int32             `json:"embedding_took_ms"`
}

func newProbeCmd() *cobra.Command {
	var (
		target  string
		text    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Call HealthCheck, Metadata and Embeddings on a running gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("dial %s: %w", target, err)
			}
			defer conn.Close()

			res, err := probe(ctx, mightypb.NewMightyInferenceClient(conn), text)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&target, "target", "localhost:50051", "gateway address")
	cmd.Flags().StringVar(&text, "text", "hello world", "text sent to Embeddings")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "deadline for all calls")
	return cmd
}

// probe issues the three calls concurrently and fails on the first error.
func probe(ctx context.Context, client mightypb.MightyInferenceClient, text string) (*probeResult, error) {
	var res probeResult
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := client.HealthCheck(ctx, &mightypb.Empty{})
		if err != nil {
			return fmt.Errorf("health check: %w", err)
		}
		res.Healthy = resp.Success
		return nil
	})
	g.Go(func() error {
		resp, err := client.Metadata(ctx, &mightypb.Empty{})
		if err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		res.Metadata = resp.Metadata
		return nil
	})
	g.Go(func() error {
		resp, err := client.Embeddings(ctx, &mightypb.TextRequest{Text: text})
		if err != nil {
			return fmt.Errorf("embeddings: %w", err)
		}
		res.Shape = []int32{resp.GetShape().Dim1, resp.GetShape().Dim2}
		res.TookMs = resp.Took
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
