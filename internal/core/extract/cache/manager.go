package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Manager 擷取結果快取管理器
// 以正規化後的來源網址為鍵，值為序列化後的食譜
// backend=memory 時使用行程內儲存，backend=redis 時委派給 redis
type Manager struct {
	config *config.Config
	rdb    *redis.Client
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
}

// cacheEntry 快取條目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 快取統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager 創建新的快取管理器
func NewManager(cfg *config.Config) *Manager {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &Manager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		stats:  cacheStats{},
	}

	if cfg.Cache.Backend == "redis" {
		m.rdb = redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
		})
	} else {
		// 啟動清理過期快取的協程（僅記憶體後端需要，redis 由 TTL 自理）
		go m.startCleanup()
	}

	common.LogInfo("快取管理員已初始化",
		zap.String("後端", cfg.Cache.Backend),
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get 以來源網址查詢快取的食譜
func (m *Manager) Get(ctx context.Context, sourceURL string) (string, error) {
	if m == nil || !m.config.Cache.Enabled {
		return "", common.ErrCacheDisabled
	}

	key := m.generateKey(sourceURL)

	if m.rdb != nil {
		return m.getRedis(ctx, key)
	}

	m.mu.RLock()
	entry, exists := m.store[key]
	m.mu.RUnlock()

	if !exists {
		m.recordMiss()
		common.LogCacheMiss("recipe", key)
		return "", common.ErrCacheMiss
	}

	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.store, key)
		m.stats.evictions++
		m.mu.Unlock()
		common.LogInfo("快取已過期", zap.String("鍵", key))
		return "", common.ErrCacheMiss
	}

	// 更新訪問統計
	m.mu.Lock()
	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++
	m.mu.Unlock()

	common.LogCacheHit("recipe", key)
	return entry.value, nil
}

// Set 儲存擷取結果
func (m *Manager) Set(ctx context.Context, sourceURL, value string) error {
	if m == nil || !m.config.Cache.Enabled {
		return nil
	}

	key := m.generateKey(sourceURL)

	if m.rdb != nil {
		return m.setRedis(ctx, key, value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 檢查快取容量
	if len(m.store) >= m.config.Cache.MaxSize {
		// 先清理過期項目
		evicted := m.cleanup()
		common.LogInfo("快取清理執行",
			zap.Int("清理數量", evicted),
		)

		// 仍然超過容量時執行 LRU 淘汰
		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRU()
		}

		if len(m.store) >= m.config.Cache.MaxSize {
			m.stats.errors++
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(m.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[key] = cacheEntry{
		value:       value,
		expiresAt:   now.Add(m.config.Cache.TTL),
		createdAt:   now,
		lastAccess:  now,
		accessCount: 0,
	}

	common.LogInfo("快取已儲存", zap.String("鍵", key))
	return nil
}

// getRedis redis 後端查詢
func (m *Manager) getRedis(ctx context.Context, key string) (string, error) {
	value, err := m.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		m.recordMiss()
		common.LogCacheMiss("recipe", key)
		return "", common.ErrCacheMiss
	}
	if err != nil {
		m.mu.Lock()
		m.stats.errors++
		m.mu.Unlock()
		common.LogWarn("redis 查詢失敗", zap.Error(err), zap.String("鍵", key))
		return "", common.ErrCacheMiss
	}

	m.mu.Lock()
	m.stats.hits++
	m.mu.Unlock()
	common.LogCacheHit("recipe", key)
	return value, nil
}

// setRedis redis 後端寫入，寫入失敗不影響請求流程
func (m *Manager) setRedis(ctx context.Context, key, value string) error {
	if err := m.rdb.Set(ctx, key, value, m.config.Cache.TTL).Err(); err != nil {
		m.mu.Lock()
		m.stats.errors++
		m.mu.Unlock()
		common.LogWarn("redis 寫入失敗", zap.Error(err), zap.String("鍵", key))
		return nil
	}
	common.LogInfo("快取已儲存", zap.String("鍵", key))
	return nil
}

func (m *Manager) recordMiss() {
	m.mu.Lock()
	m.stats.misses++
	m.mu.Unlock()
}

// generateKey 以網址的 SHA-256 生成快取鍵
func (m *Manager) generateKey(sourceURL string) string {
	hash := sha256.Sum256([]byte(sourceURL))
	return "recipe:" + hex.EncodeToString(hash[:])
}

// startCleanup 啟動清理過期快取的協程
func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		m.cleanup()
		m.mu.Unlock()
	}
}

// cleanup 清理過期的快取，呼叫端需持有寫鎖
func (m *Manager) cleanup() int {
	now := time.Now()
	count := 0

	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	if count > 0 {
		common.LogInfo("Cleaned up expired cache entries",
			zap.Int("count", count),
			zap.Int64("total_evictions", m.stats.evictions),
			zap.Int("remaining_size", len(m.store)),
		)
	}

	return count
}

// evictLRU 淘汰最少使用的條目，呼叫端需持有寫鎖
func (m *Manager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)", zap.String("鍵", oldestKey))
	}
}

// GetStats 獲取快取統計信息
func (m *Manager) GetStats() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{"enabled": false}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"backend":   m.config.Cache.Backend,
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉快取管理器
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}

	if m.rdb != nil {
		return m.rdb.Close()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
