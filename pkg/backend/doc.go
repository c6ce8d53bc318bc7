// Package backend selects the inference backend at startup.
//
//	backend:
//	  type: rest            # or "binary"
//	  rest:
//	    base_url: http://mighty:5050
//	    timeout_seconds: 30
//
// The selected backend is provided to the application as inference.Client,
// so the gateway never depends on a concrete backend.
package backend
