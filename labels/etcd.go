package labels

import (
	"context"
	"fmt"
	"path"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// KV is the subset of the etcd key/value API used by EtcdStorage.
// It is satisfied by *clientv3.Client and clientv3.KV.
type KV interface {
	Get(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.GetResponse, error)
	Put(ctx context.Context, key, val string, opts ...clientv3.OpOption) (*clientv3.PutResponse, error)
}

// EtcdStorage keeps labels in etcd under <prefix>/<namespace>/<key>, which lets
// several console instances share the same labels.
type EtcdStorage struct {
	kv      KV
	base    string
	timeout time.Duration
}

func NewEtcdStorage(kv KV, prefix, namespace string, timeout time.Duration) *EtcdStorage {
	return &EtcdStorage{
		kv:      kv,
		base:    path.Join("/", prefix, namespace),
		timeout: timeout,
	}
}

func (s *EtcdStorage) key(key string) string {
	return s.base + "/" + key
}

func (s *EtcdStorage) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		return "", fmt.Errorf("etcd get: %w", err)
	}

	if len(resp.Kvs) == 0 {
		return "", ErrNotFound
	}

	return string(resp.Kvs[0].Value), nil
}

func (s *EtcdStorage) Put(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.kv.Put(ctx, s.key(key), value); err != nil {
		return fmt.Errorf("etcd put: %w", err)
	}

	return nil
}
