// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys used by the sync surfaces.
const (
	KeyDatabaseNotAvailable        = "messages.databaseNotAvailable"
	KeySyncingData                 = "messages.syncingData"
	KeySyncComplete                = "messages.syncComplete"
	KeySyncFailed                  = "messages.syncFailed"
	KeyStorageInitializing         = "storage.initializing"
	KeyStorageDualStorage          = "storage.dualStorage"
	KeyStorageNotSynced            = "storage.notSynced"
	KeyStorageLocalStorage         = "storage.localStorage"
	KeyStorageDatabaseNotAvailable = "storage.databaseNotAvailable"
	KeyNoItemsToSync               = "messages.noItemsToSync"
	KeyMarkedAllForSync            = "messages.markedAllForSync"
	KeyCopied                      = "messages.copied"
)

var supportedLocales = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeyDatabaseNotAvailable:        "Database storage is not available",
		KeySyncingData:                 "Syncing data...",
		KeySyncComplete:                "Sync complete",
		KeySyncFailed:                  "Sync failed",
		KeyStorageInitializing:         "Initializing",
		KeyStorageDualStorage:          "Dual storage",
		KeyStorageNotSynced:            "Not synced",
		KeyStorageLocalStorage:         "Local storage",
		KeyStorageDatabaseNotAvailable: "Database is not available, nothing to review",
		KeyNoItemsToSync:               "Nothing to sync",
		KeyMarkedAllForSync:            "All items queued for sync",
		KeyCopied:                      "Copied to clipboard",
	},
	language.SimplifiedChinese: {
		KeyDatabaseNotAvailable:        "数据库存储不可用",
		KeySyncingData:                 "正在同步数据...",
		KeySyncComplete:                "同步完成",
		KeySyncFailed:                  "同步失败",
		KeyStorageInitializing:         "初始化中",
		KeyStorageDualStorage:          "双重存储",
		KeyStorageNotSynced:            "未同步",
		KeyStorageLocalStorage:         "本地存储",
		KeyStorageDatabaseNotAvailable: "数据库不可用，无可查看的内容",
		KeyNoItemsToSync:               "没有需要同步的内容",
		KeyMarkedAllForSync:            "所有条目已加入同步队列",
		KeyCopied:                      "已复制到剪贴板",
	},
}

// catalogTranslator resolves keys through an x/text message catalog.
type catalogTranslator struct {
	printer *message.Printer
	tag     language.Tag
}

// NewTranslator returns a [Translator] for the best supported match of
// locale (a BCP 47 tag such as "en", "zh-CN" or "zh-Hans"). Unparseable or
// unsupported locales fall back to English.
func NewTranslator(locale string) Translator {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			// keys and texts are static, SetString only fails on a bad tag
			_ = builder.SetString(tag, key, text)
		}
	}

	tag := matchLocale(locale)
	return &catalogTranslator{
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		tag:     tag,
	}
}

func matchLocale(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return language.English
	}

	matcher := language.NewMatcher(supportedLocales)
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supportedLocales[index]
}

func (t *catalogTranslator) T(key string) string {
	return t.printer.Sprintf(key)
}
