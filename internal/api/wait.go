package api

import (
	"context"
	"errors"
	"time"

	"github.com/peter941221/scanhawk/internal/model"
)

// PollObserver is invoked after each non-terminal poll with the status the
// service reported. Commands use it for progress output; nil is fine.
type PollObserver func(status string)

// WaitForScan polls GetScanStatus every pollInterval until the scan reaches
// completed or failed, then returns that snapshot. Any other status value,
// known or not, keeps the loop going.
//
// The budget is checked before each poll, never mid-sleep, so a wait can run
// past timeout by up to one pollInterval plus one request's latency before
// returning a WaitTimeoutError. Transport failures while polling are
// absorbed and retried on the next tick; a non-2xx response aborts the wait
// immediately. The call blocks for its whole duration; cancel ctx to bail
// out between polls.
func (c *Client) WaitForScan(ctx context.Context, scanID string, pollInterval, timeout time.Duration, observe PollObserver) (*model.ScanResult, error) {
	start := c.now()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.now().Sub(start) > timeout {
			return nil, &WaitTimeoutError{ScanID: scanID, Timeout: timeout}
		}

		result, err := c.GetScanStatus(ctx, scanID)
		if err != nil {
			var terr *TransportError
			if errors.As(err, &terr) {
				c.sleep(pollInterval)
				continue
			}
			return nil, err
		}

		if model.IsTerminalStatus(result.Status) {
			return result, nil
		}

		if observe != nil {
			observe(result.Status)
		}
		c.sleep(pollInterval)
	}
}
