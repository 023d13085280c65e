package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Release
	}{
		{
			name: "dash episode with multiline title",
			raw:  "[喵萌奶茶屋&LoliHouse] 鹿乃子乃子乃子虎视眈眈 / Shikanoko Nokonoko Koshitantan\n- 01 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕]",
			want: Release{
				Group: "喵萌奶茶屋&LoliHouse", TitleZH: "鹿乃子乃子乃子虎视眈眈",
				TitleEN: "Shikanoko Nokonoko Koshitantan", Season: 1, Episode: 1,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁内封字幕",
			},
		},
		{
			name: "dash episode with END marker",
			raw:  "[LoliHouse] 轮回七次的反派大小姐，在前敌国享受随心所欲的新婚生活\n / 7th Time Loop - 12 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕][END]",
			want: Release{
				Group: "LoliHouse", TitleZH: "轮回七次的反派大小姐，在前敌国享受随心所欲的新婚生活",
				TitleEN: "7th Time Loop", Season: 1, Episode: 12,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁内封字幕",
			},
		},
		{
			name: "full-width brackets with two season markers",
			raw:  "【幻樱字幕组】【4月新番】【古见同学有交流障碍症 第二季 Komi-san wa, Komyushou Desu. S02】【22】【GB_MP4】【1920X1080】",
			want: Release{
				Group: "幻樱字幕组", TitleZH: "古见同学有交流障碍症",
				TitleEN: "Komi-san wa, Komyushou Desu.", Season: 2, SeasonRaw: "第二季",
				Episode: 22, Resolution: "1920X1080", Sub: "GB",
			},
		},
		{
			name: "size suffix after metadata block",
			raw:  "[百冬练习组&LoliHouse] BanG Dream! 少女乐团派对！☆PICO FEVER！ / Garupa Pico: Fever! - 26 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕][END] [101.69 MB]",
			want: Release{
				Group: "百冬练习组&LoliHouse", TitleZH: "BanG Dream! 少女乐团派对！☆PICO FEVER！",
				TitleEN: "Garupa Pico: Fever!", Season: 1, Episode: 26,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁内封字幕",
			},
		},
		{
			name: "seasonal listing prefix and slash inside brackets",
			raw:  "【喵萌奶茶屋】★04月新番★[夏日重现/Summer Time Rendering][11][1080p][繁日双语][招募翻译]",
			want: Release{
				Group: "喵萌奶茶屋", TitleZH: "夏日重现", TitleEN: "Summer Time Rendering",
				Season: 1, Episode: 11, Resolution: "1080p", Sub: "繁日双语",
			},
		},
		{
			name: "baha source not shadowed by WEB-DL",
			raw:  "[Lilith-Raws] 关于我在无意间被隔壁的天使变成废柴这件事 / Otonari no Tenshi-sama - 09 [Baha][WEB-DL][1080p][AVC AAC][CHT][MP4]",
			want: Release{
				Group: "Lilith-Raws", TitleZH: "关于我在无意间被隔壁的天使变成废柴这件事",
				TitleEN: "Otonari no Tenshi-sama", Season: 1, Episode: 9,
				Resolution: "1080p", Source: "Baha", Sub: "CHT",
			},
		},
		{
			name: "three digit episode with date tag",
			raw:  "[梦蓝字幕组]New Doraemon 哆啦A梦新番[747][2023.02.25][AVC][1080P][GB_JP][MP4]",
			want: Release{
				Group: "梦蓝字幕组", TitleZH: "哆啦A梦新番", TitleEN: "New Doraemon",
				Season: 1, Episode: 747, Resolution: "1080P", Sub: "GB_JP",
			},
		},
		{
			name: "bracketed cjk episode marker",
			raw:  "[织梦字幕组][尼尔：机械纪元 NieR Automata Ver1.1a][02集][1080P][AVC][简日双语]",
			want: Release{
				Group: "织梦字幕组", TitleZH: "尼尔：机械纪元", TitleEN: "NieR Automata Ver1.1a",
				Season: 1, Episode: 2, Resolution: "1080P", Sub: "简日双语",
			},
		},
		{
			name: "EP prefix with japanese title",
			raw:  "[MagicStar] 假面骑士Geats / 仮面ライダーギーツ EP33 [WEBDL] [1080p] [TTFC]【生】",
			want: Release{
				Group: "MagicStar", TitleZH: "假面骑士Geats", TitleJP: "仮面ライダーギーツ",
				Season: 1, Episode: 33, Resolution: "1080p",
			},
		},
		{
			name: "bare cjk episode marker with recruiting note",
			raw:  "【极影字幕社】★4月新番 天国大魔境 Tengoku Daimakyou 第05话 GB 720P MP4（字幕社招人内详）",
			want: Release{
				Group: "极影字幕社", TitleZH: "天国大魔境", TitleEN: "Tengoku Daimakyou",
				Season: 1, Episode: 5, Resolution: "720P", Sub: "字幕社招人内详",
			},
		},
		{
			name: "tilde decorated english title",
			raw:  "【喵萌奶茶屋】★07月新番★[银砂糖师与黑妖精 ~ Sugar Apple Fairy Tale ~][13][1080p][简日双语][招募翻译]",
			want: Release{
				Group: "喵萌奶茶屋", TitleZH: "银砂糖师与黑妖精", TitleEN: "~ Sugar Apple Fairy Tale ~",
				Season: 1, Episode: 13, Resolution: "1080p", Sub: "简日双语",
			},
		},
		{
			name: "latin prefix kept inside chinese title",
			raw:  "[ANi]  16bit 的感动 ANOTHER LAYER - 01 [1080P][Baha][WEB-DL][AAC AVC][CHT][MP4]",
			want: Release{
				Group: "ANi", TitleZH: "16bit 的感动 ANOTHER LAYER",
				Season: 1, Episode: 1, Resolution: "1080P", Source: "Baha", Sub: "CHT",
			},
		},
		{
			name: "chinese numeral season with english ordinal kept",
			raw:  "[LoliHouse] 关于我转生变成史莱姆这档事 第二季 / Tensei shitara Slime Datta Ken 2nd Season - 01 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕]",
			want: Release{
				Group: "LoliHouse", TitleZH: "关于我转生变成史莱姆这档事",
				TitleEN: "Tensei shitara Slime Datta Ken 2nd Season",
				Season:  2, SeasonRaw: "第二季", Episode: 1,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁内封字幕",
			},
		},
		{
			name: "4k resolution",
			raw:  "[NC-Raws] 葬送的芙莉莲 / Sousou no Frieren - 03 [B-Global][WEB-DL][2160p][AVC AAC][Multi Sub][MKV]",
			want: Release{
				Group: "NC-Raws", TitleZH: "葬送的芙莉莲", TitleEN: "Sousou no Frieren",
				Season: 1, Episode: 3, Resolution: "2160p", Source: "B-Global",
			},
		},
		{
			name: "bracketed english season marker",
			raw:  "[LoliHouse] 狼与香辛料 [Season 2] / Spice and Wolf - 01 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕]",
			want: Release{
				Group: "LoliHouse", TitleZH: "狼与香辛料", TitleEN: "Spice and Wolf",
				Season: 2, SeasonRaw: "Season 2", Episode: 1,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁内封字幕",
			},
		},
		{
			name: "dashes inside chinese title",
			raw:  "[北宇治字幕组&LoliHouse] 地。-关于地球的运动- / Chi. Chikyuu no Undou ni Tsuite - 03 [WebRip 1080p HEVC-10bit AAC ASSx2][简繁日内封字幕]",
			want: Release{
				Group: "北宇治字幕组&LoliHouse", TitleZH: "地。-关于地球的运动-",
				TitleEN: "Chi. Chikyuu no Undou ni Tsuite", Season: 1, Episode: 3,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁日内封字幕",
			},
		},
		{
			name: "english only title leaves chinese absent",
			raw:  "[动漫国字幕组&LoliHouse] THE MARGINAL SERVICE - 08 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕]",
			want: Release{
				Group: "动漫国字幕组&LoliHouse", TitleEN: "THE MARGINAL SERVICE",
				Season: 1, Episode: 8, Resolution: "1080p", Source: "WebRip", Sub: "简繁内封字幕",
			},
		},
		{
			name: "numeric title prefix is not the episode",
			raw:  "[ANi] 29 岁单身中坚冒险家的日常 - 07 [1080P][Baha][WEB-DL][AAC AVC][CHT][MP4]",
			want: Release{
				Group: "ANi", TitleZH: "29 岁单身中坚冒险家的日常",
				Season: 1, Episode: 7, Resolution: "1080P", Source: "Baha", Sub: "CHT",
			},
		},
		{
			name: "attached dash after full-width parens",
			raw:  "[御坂字幕组] 男女之间存在纯友情吗？（不，不存在!!）-01 [WebRip 1080p HEVC10-bit AAC] [简繁日内封] [急招翻校轴]",
			want: Release{
				Group: "御坂字幕组", TitleZH: "男女之间存在纯友情吗？（不，不存在!!）",
				Season: 1, Episode: 1, Resolution: "1080p", Source: "WebRip", Sub: "简繁日内封",
			},
		},
		{
			name: "inline episode glued to metadata block",
			raw:  " [NEO·QSW]想星的阿克艾利昂 情感神话 想星のアクエリオン Aquarion: Myth of Emotions 02[WEBRIP AVC 1080P]（搜索用：想星的大天使）",
			want: Release{
				Group: "NEO·QSW", TitleZH: "想星的阿克艾利昂",
				TitleJP: "情感神话 想星のアクエリオン Aquarion: Myth of Emotions",
				Season:  1, Episode: 2, Resolution: "1080P",
			},
		},
		{
			name: "inline episode with space before bracket",
			raw:  "[北宇治字幕组&LoliHouse] 地。-关于地球的运动- / Chi. Chikyuu no Undou ni Tsuite 03 [WebRip 1080p HEVC-10bit AAC ASSx2][简繁日内封字幕]",
			want: Release{
				Group: "北宇治字幕组&LoliHouse", TitleZH: "地。-关于地球的运动-",
				TitleEN: "Chi. Chikyuu no Undou ni Tsuite", Season: 1, Episode: 3,
				Resolution: "1080p", Source: "WebRip", Sub: "简繁日内封字幕",
			},
		},
		{
			name: "cjk marker between bare dashes keeps them in the title",
			raw:  "[Doomdos] - 白色闪电 - 第02话 - [1080P].mp4",
			want: Release{
				Group: "Doomdos", TitleZH: "- 白色闪电 -",
				Season: 1, Episode: 2, Resolution: "1080P",
			},
		},
		{
			name: "degree sign in group and colon in english title",
			raw:  "[Up to 21°C] 鬼灭之刃 柱训练篇 / Kimetsu no Yaiba: Hashira Geiko-hen - 03 (CR 1920x1080 AVC AAC MKV)",
			want: Release{
				Group: "Up to 21°C", TitleZH: "鬼灭之刃 柱训练篇",
				TitleEN: "Kimetsu no Yaiba: Hashira Geiko-hen", Season: 1, Episode: 3,
				Resolution: "1920x1080",
			},
		},
		{
			name: "latin loanword breaks the chinese title split",
			raw:  "[ANi] 身为 VTuber 的我因为忘记关台而成了传说 - 01 [1080P][Baha][WEB-DL][AAC AVC][CHT][MP4][379.34 MB]",
			want: Release{
				Group: "ANi", TitleZH: "身为", TitleEN: "VTuber 的我因为忘记关台而成了传说",
				Season: 1, Episode: 1, Resolution: "1080P", Source: "Baha", Sub: "CHT",
			},
		},
		{
			name: "short loanword prefix is dropped from the title",
			raw:  "[ANi]  从 Lv2 开始开外挂的前勇者候补过著悠哉异世界生活 - 04 [1080P][Baha][WEB-DL][AAC AVC][CHT][MP4]",
			want: Release{
				Group: "ANi", TitleZH: "开始开外挂的前勇者候补过著悠哉异世界生活",
				Season: 1, Episode: 4, Resolution: "1080P", Source: "Baha", Sub: "CHT",
			},
		},
		{
			name: "western sxxeyy without group keeps titles absent",
			raw:  "Girls Band Cry S01E05 VOSTFR 1080p WEB x264 AAC -Tsundere-Raws (ADN)",
			want: Release{
				Season: 1, Episode: 5, Resolution: "1080p",
			},
		},
		{
			name: "compound episode keeps the first number",
			raw:  "【豌豆字幕组&风之圣殿字幕组】★04月新番[鬼灭之刃 柱训练篇 / Kimetsu_no_Yaiba-Hashira_Geiko_Hen][02(57)][简体][1080P][MP4]",
			want: Release{
				Group: "豌豆字幕组&风之圣殿字幕组", TitleZH: "鬼灭之刃 柱训练篇",
				TitleEN: "Kimetsu_no_Yaiba-Hashira_Geiko_Hen", Season: 1, Episode: 2,
				Resolution: "1080P", Sub: "简体",
			},
		},
		{
			name: "traditional chinese title",
			raw:  "[ANi] 不時輕聲地以俄語遮羞的鄰座艾莉同學 - 02 [1080P][Baha][WEB-DL][AAC AVC][CHT].mp4",
			want: Release{
				Group: "ANi", TitleZH: "不時輕聲地以俄語遮羞的鄰座艾莉同學",
				Season: 1, Episode: 2, Resolution: "1080P", Source: "Baha", Sub: "CHT",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got == nil {
				t.Fatalf("Parse(%q) = nil, want %+v", tt.raw, tt.want)
			}
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseUnsupportedLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "pre-air episode marker chs",
			raw:  "[KitaujiSub] Shikanoko Nokonoko Koshitantan [01Pre][WebRip][HEVC_AAC][CHS_JP].mp4",
		},
		{
			name: "pre-air episode marker cht",
			raw:  "[KitaujiSub] Shikanoko Nokonoko Koshitantan [01Pre][WebRip][HEVC_AAC][CHT_JP].mp4",
		},
		{
			name: "bracket delimited multi segment episode 04",
			raw:  "[阿特拉斯字幕组·雪原市出差所][命运-奇异赝品_Fate／strange Fake][04_半神们的卡农曲][简繁日内封PGS][日语配音版_Japanese Dub][Web-DL Remux][1080p AVC AAC]",
		},
		{
			name: "bracket delimited multi segment episode 07",
			raw:  "[阿特拉斯字幕组·雪原市出差所][命运-奇异赝品_Fate／strange Fake][07_神自黄昏归来][简繁日内封PGS][日语配音版_Japanese Dub][Web-DL Remux][1080p AVC AAC]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.raw); got != nil {
				t.Errorf("Parse(%q) = %+v, want nil", tt.raw, got)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	raw := "[LoliHouse] 狼与香辛料 [Season 2] / Spice and Wolf - 01 [WebRip 1080p HEVC-10bit AAC][简繁内封字幕]"
	first := Parse(raw)
	for i := 0; i < 100; i++ {
		if diff := cmp.Diff(first, Parse(raw)); diff != "" {
			t.Fatalf("Parse(%q) not deterministic on run %d (-first +got):\n%s", raw, i, diff)
		}
	}
}

func TestExtractGroup(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"half-width brackets", "[LoliHouse] 狼与香辛料 - 01", "LoliHouse"},
		{"full-width brackets", "【幻樱字幕组】【4月新番】古见同学", "幻樱字幕组"},
		{"multi group", "[喵萌奶茶屋&LoliHouse] 鹿乃子", "喵萌奶茶屋&LoliHouse"},
		{"spaces inside tag", "[Up to 21°C] 鬼灭之刃 - 03", "Up to 21°C"},
		{"no brackets", "Girls Band Cry S01E05 1080p", ""},
		{"empty brackets", "[] something", ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractGroup(tt.title); got != tt.want {
				t.Errorf("ExtractGroup(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
