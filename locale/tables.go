//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package locale

// Each locale carries a complete table; TestTablesComplete checks that every
// table defines the same keys as the English one.
var tables = map[string]map[string]string{
	"en": {
		"file":         "File",
		"new":          "New",
		"open":         "Open",
		"save":         "Save",
		"exit":         "Exit",
		"edit":         "Edit",
		"copy":         "Copy",
		"paste":        "Paste",
		"language":     "Language",
		"saved":        "File saved successfully",
		"unsaved":      "Unsaved changes",
		"confirm_save": "Save unsaved changes?",
		"error":        "Error",
		"open_failed":  "Open failed",
		"save_failed":  "Save failed",
		"title":        "Vertical Text Editor",
		"yes":          "Yes",
		"no":           "No",
		"cancel":       "Cancel",
		"ok":           "OK",
		"text_files":   "Text files",
		"all_files":    "All files",
		"path_prompt":  "Path",
	},
	"zh-CN": {
		"file":         "文件",
		"new":          "新建",
		"open":         "打开",
		"save":         "保存",
		"exit":         "退出",
		"edit":         "编辑",
		"copy":         "复制",
		"paste":        "粘贴",
		"language":     "语言",
		"saved":        "文件保存成功",
		"unsaved":      "未保存的修改",
		"confirm_save": "是否保存未保存的修改？",
		"error":        "错误",
		"open_failed":  "打开失败",
		"save_failed":  "保存失败",
		"title":        "竖排文本编辑器",
		"yes":          "是",
		"no":           "否",
		"cancel":       "取消",
		"ok":           "确定",
		"text_files":   "文本文件",
		"all_files":    "所有文件",
		"path_prompt":  "路径",
	},
	"zh-TW": {
		"file":         "檔案",
		"new":          "新增",
		"open":         "開啟",
		"save":         "儲存",
		"exit":         "離開",
		"edit":         "編輯",
		"copy":         "複製",
		"paste":        "貼上",
		"language":     "語言",
		"saved":        "檔案儲存成功",
		"unsaved":      "未儲存的修改",
		"confirm_save": "是否儲存未儲存的修改？",
		"error":        "錯誤",
		"open_failed":  "開啟失敗",
		"save_failed":  "儲存失敗",
		"title":        "直書文字編輯器",
		"yes":          "是",
		"no":           "否",
		"cancel":       "取消",
		"ok":           "確定",
		"text_files":   "文字檔案",
		"all_files":    "所有檔案",
		"path_prompt":  "路徑",
	},
	"ja": {
		"file":         "ファイル",
		"new":          "新規",
		"open":         "開く",
		"save":         "保存",
		"exit":         "終了",
		"edit":         "編集",
		"copy":         "コピー",
		"paste":        "ペースト",
		"language":     "言語",
		"saved":        "ファイルを保存しました",
		"unsaved":      "未保存の変更",
		"confirm_save": "未保存の変更を保存しますか？",
		"error":        "エラー",
		"open_failed":  "開けませんでした",
		"save_failed":  "保存できませんでした",
		"title":        "縦書きテキストエディタ",
		"yes":          "はい",
		"no":           "いいえ",
		"cancel":       "キャンセル",
		"ok":           "OK",
		"text_files":   "テキストファイル",
		"all_files":    "すべてのファイル",
		"path_prompt":  "パス",
	},
	"ko": {
		"file":         "파일",
		"new":          "새 파일",
		"open":         "열기",
		"save":         "저장",
		"exit":         "종료",
		"edit":         "편집",
		"copy":         "복사",
		"paste":        "붙여넣기",
		"language":     "언어",
		"saved":        "파일 저장 성공",
		"unsaved":      "저장되지 않은 변경 사항",
		"confirm_save": "저장되지 않은 변경 사항을 저장하시겠습니까?",
		"error":        "오류",
		"open_failed":  "열기 실패",
		"save_failed":  "저장 실패",
		"title":        "세로쓰기 텍스트 편집기",
		"yes":          "예",
		"no":           "아니요",
		"cancel":       "취소",
		"ok":           "확인",
		"text_files":   "텍스트 파일",
		"all_files":    "모든 파일",
		"path_prompt":  "경로",
	},
}

// Rendering font family for each locale
var fontFamilies = map[string]string{
	"en":    "Arial Unicode MS",
	"zh-CN": "SimSun",
	"zh-TW": "MingLiU",
	"ja":    "Meiryo",
	"ko":    "Meiryo",
}
