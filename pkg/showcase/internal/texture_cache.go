package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 256

type cacheEntry struct {
	key     string
	texture *sdl.Texture
}

// TextureCache keeps recently drawn text textures, evicting the least recently used.
type TextureCache struct {
	entries map[string]*list.Element
	order   *list.List // front is most recent
	maxSize int
	destroy func(*sdl.Texture)
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		entries: make(map[string]*list.Element, maxSize),
		order:   list.New(),
		maxSize: maxSize,
		destroy: func(t *sdl.Texture) {
			if t != nil {
				_ = t.Destroy()
			}
		},
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		if entry.texture != texture {
			c.destroy(entry.texture)
		}
		entry.texture = texture
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, texture: texture})
}

func (c *TextureCache) Len() int {
	return c.order.Len()
}

func (c *TextureCache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	entry := c.order.Remove(el).(*cacheEntry)
	delete(c.entries, entry.key)
	c.destroy(entry.texture)
}

func (c *TextureCache) Destroy() {
	for _, el := range c.entries {
		c.destroy(el.Value.(*cacheEntry).texture)
	}
	c.entries = make(map[string]*list.Element, c.maxSize)
	c.order.Init()
}
