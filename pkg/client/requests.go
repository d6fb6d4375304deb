package client

import (
	"context"
	"fmt"
	"io"

	"github.com/ipp-protocol/ipp-go/pkg/wire"
)

// JobState is the job-state enumeration from RFC 8011.
type JobState int32

const (
	JobStatePending           JobState = 3
	JobStatePendingHeld       JobState = 4
	JobStateProcessing        JobState = 5
	JobStateProcessingStopped JobState = 6
	JobStateCanceled          JobState = 7
	JobStateAborted           JobState = 8
	JobStateCompleted         JobState = 9
)

// String returns the job-state keyword.
func (s JobState) String() string {
	switch s {
	case JobStatePending:
		return "pending"
	case JobStatePendingHeld:
		return "pending-held"
	case JobStateProcessing:
		return "processing"
	case JobStateProcessingStopped:
		return "processing-stopped"
	case JobStateCanceled:
		return "canceled"
	case JobStateAborted:
		return "aborted"
	case JobStateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("%d", int32(s))
	}
}

// JobInfo describes a job the printer created or reported.
type JobInfo struct {
	// ID is the printer-assigned job ID.
	ID int32

	// URI is the job URI, when reported.
	URI string

	// State is the job state, when reported.
	State JobState

	// StateReasons are the job-state-reasons keywords, when reported.
	StateReasons []string
}

// PrintJobRequest carries the inputs of a Print-Job operation.
type PrintJobRequest struct {
	// JobName is the client-supplied job name.
	JobName string

	// Format is the document format (MIME media type). Empty lets the
	// printer apply its default.
	Format string

	// Document supplies the document bytes.
	Document io.Reader
}

// GetPrinterAttributes fetches printer attributes. With no names given
// the printer returns its full attribute set; otherwise the names are
// sent as the requested-attributes keyword list.
func (c *Client) GetPrinterAttributes(ctx context.Context, names ...string) (*wire.AttributeList, error) {
	msg := c.NewRequest(wire.OpGetPrinterAttributes)
	if len(names) > 0 {
		msg.Attributes.Add(wire.TagOperationAttributes,
			wire.NewAttribute(wire.RequestedAttributes, keywordList(names)))
	}
	c.addUserName(msg)

	reply, err := c.Do(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(reply); err != nil {
		return reply.Attributes, err
	}
	return reply.Attributes, nil
}

// PrintJob submits a document for printing and returns the created job.
func (c *Client) PrintJob(ctx context.Context, req PrintJobRequest) (*JobInfo, error) {
	if req.Document == nil {
		return nil, fmt.Errorf("print job: no document")
	}

	msg := c.NewRequest(wire.OpPrintJob)
	c.addUserName(msg)
	if req.JobName != "" {
		msg.Attributes.Add(wire.TagOperationAttributes,
			wire.NewAttribute(wire.JobName, wire.Name(req.JobName)))
	}
	if req.Format != "" {
		msg.Attributes.Add(wire.TagOperationAttributes,
			wire.NewAttribute(wire.DocumentFormat, wire.MimeMediaType(req.Format)))
	}

	reply, err := c.Do(ctx, msg, req.Document)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(reply); err != nil {
		return nil, err
	}
	return jobInfoFromReply(reply), nil
}

// CancelJob cancels the job with the given ID.
func (c *Client) CancelJob(ctx context.Context, jobID int32) error {
	msg := c.NewRequest(wire.OpCancelJob)
	c.addUserName(msg)
	msg.Attributes.Add(wire.TagOperationAttributes,
		wire.NewAttribute(wire.JobID, wire.Integer(jobID)))

	reply, err := c.Do(ctx, msg, nil)
	if err != nil {
		return err
	}
	return checkStatus(reply)
}

// GetJobs fetches the printer's job list. The result is the raw decoded
// attribute list: repeated job groups in the response merge by attribute
// name, last job winning, so callers needing per-job separation should
// request one job at a time via GetJobAttributes.
func (c *Client) GetJobs(ctx context.Context) (*wire.AttributeList, error) {
	msg := c.NewRequest(wire.OpGetJobs)
	c.addUserName(msg)
	msg.Attributes.Add(wire.TagOperationAttributes,
		wire.NewAttribute(wire.RequestedAttributes, keywordList([]string{
			wire.JobID, wire.JobName, wire.JobState,
		})))

	reply, err := c.Do(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(reply); err != nil {
		return reply.Attributes, err
	}
	return reply.Attributes, nil
}

// GetJobAttributes fetches the attributes of a single job.
func (c *Client) GetJobAttributes(ctx context.Context, jobID int32) (*JobInfo, error) {
	msg := c.NewRequest(wire.OpGetJobAttributes)
	c.addUserName(msg)
	msg.Attributes.Add(wire.TagOperationAttributes,
		wire.NewAttribute(wire.JobID, wire.Integer(jobID)))

	reply, err := c.Do(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(reply); err != nil {
		return nil, err
	}
	return jobInfoFromReply(reply), nil
}

// addUserName attaches requesting-user-name when configured.
func (c *Client) addUserName(msg *wire.Message) {
	if c.config.UserName == "" {
		return
	}
	msg.Attributes.Add(wire.TagOperationAttributes,
		wire.NewAttribute(wire.RequestingUserName, wire.Name(c.config.UserName)))
}

// keywordList builds the value for a 1setOf keyword attribute.
func keywordList(names []string) wire.Value {
	if len(names) == 1 {
		return wire.Keyword(names[0])
	}
	values := make(wire.Array, len(names))
	for i, name := range names {
		values[i] = wire.Keyword(name)
	}
	return values
}

// jobInfoFromReply extracts job attributes from a response. The decoder
// files the trailing attribute of one group under the next, so lookups
// scan every group rather than trusting the job group alone.
func jobInfoFromReply(reply *wire.Message) *JobInfo {
	info := &JobInfo{}
	if v, ok := findAttr(reply.Attributes, wire.JobID); ok {
		if id, ok := v.(wire.Integer); ok {
			info.ID = int32(id)
		}
	}
	if v, ok := findAttr(reply.Attributes, wire.JobURI); ok {
		if uri, ok := v.(wire.URI); ok {
			info.URI = string(uri)
		}
	}
	if v, ok := findAttr(reply.Attributes, wire.JobState); ok {
		if state, ok := v.(wire.Enum); ok {
			info.State = JobState(state)
		}
	}
	if v, ok := findAttr(reply.Attributes, wire.JobStateReasons); ok {
		info.StateReasons = keywordStrings(v)
	}
	return info
}

// findAttr looks a name up across all groups.
func findAttr(list *wire.AttributeList, name string) (wire.Value, bool) {
	for _, group := range []wire.DelimiterTag{
		wire.TagJobAttributes,
		wire.TagOperationAttributes,
		wire.TagPrinterAttributes,
		wire.TagUnsupportedAttributes,
	} {
		if attr, ok := list.Get(group, name); ok {
			return attr.Value(), true
		}
	}
	return nil, false
}

// keywordStrings flattens a keyword or 1setOf keyword value.
func keywordStrings(v wire.Value) []string {
	switch v := v.(type) {
	case wire.Keyword:
		return []string{string(v)}
	case wire.Array:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			if kw, ok := elem.(wire.Keyword); ok {
				out = append(out, string(kw))
			}
		}
		return out
	default:
		return nil
	}
}
