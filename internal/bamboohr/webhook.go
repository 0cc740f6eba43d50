package bamboohr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const webhooksEndpoint = "/webhooks"

func (c *client) GetWebhook(ctx context.Context, webhookID int) (*Webhook, error) {
	r := newRequest(fmt.Sprintf("%s/%d", webhooksEndpoint, webhookID), http.MethodGet, JSONMode)
	webhook, err := call(ctx, c, r, statusPolicy[Webhook]{
		http.StatusOK:       decodeBody[Webhook](),
		http.StatusNotFound: failWith[Webhook](ErrNotFound, "webhook %d not found", webhookID),
	})
	if err != nil {
		return nil, err
	}
	return &webhook, nil
}

func (c *client) GetWebhooks(ctx context.Context) ([]Webhook, error) {
	r := newRequest(webhooksEndpoint, http.MethodGet, JSONMode)
	list, err := call(ctx, c, r, statusPolicy[webhookList]{
		http.StatusOK: decodeBody[webhookList](),
	})
	if err != nil {
		return nil, err
	}
	return list.Webhooks, nil
}

// AddWebhook returns the stored webhook. Its PrivateKey is only ever sent
// back here.
func (c *client) AddWebhook(ctx context.Context, webhook Webhook) (*Webhook, error) {
	body, err := json.Marshal(webhookBody(webhook))
	if err != nil {
		return nil, invalidInput(webhooksEndpoint, "could not encode webhook", err)
	}

	r := newRequest(webhooksEndpoint, http.MethodPost, JSONMode).withBody(contentTypeJSON, body)
	created, err := call(ctx, c, r, statusPolicy[Webhook]{
		http.StatusCreated:    decodeBody[Webhook](),
		http.StatusBadRequest: failWith[Webhook](ErrBadPayload, "bad webhook %q", webhook.Name),
		http.StatusForbidden:  failWith[Webhook](ErrForbidden, "not allowed to add webhooks"),
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *client) UpdateWebhook(ctx context.Context, webhook Webhook) (*Webhook, error) {
	path := fmt.Sprintf("%s/%d", webhooksEndpoint, webhook.ID)
	if webhook.ID <= 0 {
		return nil, invalidInput(path, "an id is required to update a webhook", nil)
	}

	body, err := json.Marshal(webhookBody(webhook))
	if err != nil {
		return nil, invalidInput(path, "could not encode webhook", err)
	}

	r := newRequest(path, http.MethodPut, JSONMode).withBody(contentTypeJSON, body)
	updated, err := call(ctx, c, r, statusPolicy[Webhook]{
		http.StatusOK:         decodeBody[Webhook](),
		http.StatusBadRequest: failWith[Webhook](ErrBadPayload, "bad webhook %d", webhook.ID),
		http.StatusForbidden:  failWith[Webhook](ErrForbidden, "not allowed to update webhook %d", webhook.ID),
		http.StatusNotFound:   failWith[Webhook](ErrNotFound, "webhook %d not found", webhook.ID),
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *client) DeleteWebhook(ctx context.Context, webhookID int) (bool, error) {
	r := newRequest(fmt.Sprintf("%s/%d", webhooksEndpoint, webhookID), http.MethodDelete, JSONMode)
	return call(ctx, c, r, statusPolicy[bool]{
		http.StatusOK:       acknowledge(),
		http.StatusNotFound: failWith[bool](ErrNotFound, "webhook %d not found", webhookID),
	})
}

func (c *client) GetWebhookMonitorFields(ctx context.Context) ([]WebhookMonitorField, error) {
	r := newRequest(webhooksEndpoint+"/monitor_fields", http.MethodGet, JSONMode)
	list, err := call(ctx, c, r, statusPolicy[webhookMonitorFieldList]{
		http.StatusOK: decodeBody[webhookMonitorFieldList](),
	})
	if err != nil {
		return nil, err
	}
	return list.Fields, nil
}

// webhookBody drops the fields only the remote may set.
func webhookBody(w Webhook) Webhook {
	w.ID = 0
	w.Created = ""
	w.LastSent = nil
	w.PrivateKey = ""
	return w
}
